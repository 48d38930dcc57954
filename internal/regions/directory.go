package regions

import (
	"sort"
	"strings"
)

// Province holds the static reference data for one administrative province
type Province struct {
	Name      string  `json:"name"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	// Density is a coarse urbanization weight, 1 (sparse) to 5 (metro).
	// Feeds the enrichment easy score: denser provinces read as easier.
	Density int `json:"density"`
}

// directory maps each province to its representative center (the capital
// district) and density weight
var directory = map[string]Province{
	"Adana":          {"Adana", 37.0000, 35.3213, 4},
	"Adıyaman":       {"Adıyaman", 37.7648, 38.2786, 2},
	"Afyonkarahisar": {"Afyonkarahisar", 38.7638, 30.5403, 2},
	"Ağrı":           {"Ağrı", 39.7191, 43.0503, 1},
	"Aksaray":        {"Aksaray", 38.3687, 34.0370, 2},
	"Amasya":         {"Amasya", 40.6499, 35.8353, 2},
	"Ankara":         {"Ankara", 39.9334, 32.8597, 5},
	"Antalya":        {"Antalya", 36.8969, 30.7133, 4},
	"Ardahan":        {"Ardahan", 41.1105, 42.7022, 1},
	"Artvin":         {"Artvin", 41.1828, 41.8183, 1},
	"Aydın":          {"Aydın", 37.8444, 27.8458, 3},
	"Balıkesir":      {"Balıkesir", 39.6484, 27.8826, 3},
	"Bartın":         {"Bartın", 41.6344, 32.3375, 1},
	"Batman":         {"Batman", 37.8812, 41.1351, 2},
	"Bayburt":        {"Bayburt", 40.2552, 40.2249, 1},
	"Bilecik":        {"Bilecik", 40.1501, 29.9831, 1},
	"Bingöl":         {"Bingöl", 38.8847, 40.4982, 1},
	"Bitlis":         {"Bitlis", 38.4006, 42.1095, 1},
	"Bolu":           {"Bolu", 40.7356, 31.6061, 2},
	"Burdur":         {"Burdur", 37.7203, 30.2908, 1},
	"Bursa":          {"Bursa", 40.1885, 29.0610, 4},
	"Çanakkale":      {"Çanakkale", 40.1553, 26.4142, 2},
	"Çankırı":        {"Çankırı", 40.6013, 33.6134, 1},
	"Çorum":          {"Çorum", 40.5506, 34.9556, 2},
	"Denizli":        {"Denizli", 37.7765, 29.0864, 3},
	"Diyarbakır":     {"Diyarbakır", 37.9144, 40.2306, 3},
	"Düzce":          {"Düzce", 40.8438, 31.1565, 2},
	"Edirne":         {"Edirne", 41.6818, 26.5623, 2},
	"Elazığ":         {"Elazığ", 38.6810, 39.2264, 2},
	"Erzincan":       {"Erzincan", 39.7500, 39.4928, 1},
	"Erzurum":        {"Erzurum", 39.9000, 41.2700, 2},
	"Eskişehir":      {"Eskişehir", 39.7767, 30.5206, 3},
	"Gaziantep":      {"Gaziantep", 37.0662, 37.3833, 4},
	"Giresun":        {"Giresun", 40.9128, 38.3895, 2},
	"Gümüşhane":      {"Gümüşhane", 40.4602, 39.4814, 1},
	"Hakkari":        {"Hakkari", 37.5833, 43.7333, 1},
	"Hatay":          {"Hatay", 36.2021, 36.1600, 3},
	"Iğdır":          {"Iğdır", 39.9208, 44.0436, 1},
	"Isparta":        {"Isparta", 37.7648, 30.5566, 2},
	"İstanbul":       {"İstanbul", 41.0082, 28.9784, 5},
	"İzmir":          {"İzmir", 38.4237, 27.1428, 5},
	"Kahramanmaraş":  {"Kahramanmaraş", 37.5858, 36.9371, 2},
	"Karabük":        {"Karabük", 41.2061, 32.6204, 1},
	"Karaman":        {"Karaman", 37.1759, 33.2287, 1},
	"Kars":           {"Kars", 40.6013, 43.0975, 1},
	"Kastamonu":      {"Kastamonu", 41.3887, 33.7827, 1},
	"Kayseri":        {"Kayseri", 38.7312, 35.4787, 3},
	"Kırıkkale":      {"Kırıkkale", 39.8468, 33.5153, 2},
	"Kırklareli":     {"Kırklareli", 41.7333, 27.2167, 1},
	"Kırşehir":       {"Kırşehir", 39.1425, 34.1709, 1},
	"Kilis":          {"Kilis", 36.7184, 37.1212, 1},
	"Kocaeli":        {"Kocaeli", 40.7654, 29.9408, 4},
	"Konya":          {"Konya", 37.8667, 32.4833, 3},
	"Kütahya":        {"Kütahya", 39.4167, 29.9833, 2},
	"Malatya":        {"Malatya", 38.3552, 38.3095, 2},
	"Manisa":         {"Manisa", 38.6191, 27.4289, 3},
	"Mardin":         {"Mardin", 37.3212, 40.7245, 2},
	"Mersin":         {"Mersin", 36.8000, 34.6333, 3},
	"Muğla":          {"Muğla", 37.2153, 28.3636, 2},
	"Muş":            {"Muş", 38.9462, 41.7539, 1},
	"Nevşehir":       {"Nevşehir", 38.6244, 34.7239, 2},
	"Niğde":          {"Niğde", 37.9667, 34.6833, 1},
	"Ordu":           {"Ordu", 40.9839, 37.8764, 2},
	"Osmaniye":       {"Osmaniye", 37.0742, 36.2478, 2},
	"Rize":           {"Rize", 41.0201, 40.5234, 2},
	"Sakarya":        {"Sakarya", 40.7569, 30.3783, 3},
	"Samsun":         {"Samsun", 41.2928, 36.3313, 3},
	"Siirt":          {"Siirt", 37.9333, 41.9500, 1},
	"Sinop":          {"Sinop", 42.0231, 35.1531, 1},
	"Sivas":          {"Sivas", 39.7477, 37.0179, 2},
	"Şanlıurfa":      {"Şanlıurfa", 37.1591, 38.7969, 3},
	"Şırnak":         {"Şırnak", 37.5164, 42.4611, 1},
	"Tekirdağ":       {"Tekirdağ", 40.9833, 27.5167, 3},
	"Tokat":          {"Tokat", 40.3167, 36.5500, 2},
	"Trabzon":        {"Trabzon", 41.0015, 39.7178, 3},
	"Tunceli":        {"Tunceli", 39.1079, 39.5401, 1},
	"Uşak":           {"Uşak", 38.6823, 29.4082, 2},
	"Van":            {"Van", 38.4891, 43.4089, 2},
	"Yalova":         {"Yalova", 40.6500, 29.2667, 2},
	"Yozgat":         {"Yozgat", 39.8181, 34.8147, 1},
	"Zonguldak":      {"Zonguldak", 41.4564, 31.7987, 2},
}

// Lookup returns the province entry for an exact name match
func Lookup(name string) (Province, bool) {
	p, ok := directory[name]
	return p, ok
}

// MatchSubstring returns the first province whose name appears inside the
// given place name. Used as a fallback when a place name has no
// "District, Province" structure.
func MatchSubstring(placeName string) (Province, bool) {
	for name, p := range directory {
		if strings.Contains(placeName, name) {
			return p, true
		}
	}
	return Province{}, false
}

// All returns every province in the directory, sorted by name
func All() []Province {
	out := make([]Province, 0, len(directory))
	for _, p := range directory {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Density returns the density weight for a province, defaulting to 1 for
// names outside the directory (minted or free-form place names)
func Density(name string) int {
	if p, ok := directory[name]; ok {
		return p.Density
	}
	return 1
}
