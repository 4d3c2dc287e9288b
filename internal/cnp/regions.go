package cnp

import "sort"

// regions maps the two-digit region code to its display name: counties 01-39,
// Bucharest 40, its sectors 41-46 and the historical Călărași/Giurgiu codes.
var regions = map[string]string{
	"01": "Alba",
	"02": "Arad",
	"03": "Argeș",
	"04": "Bacău",
	"05": "Bihor",
	"06": "Bistrița-Năsăud",
	"07": "Botoșani",
	"08": "Brașov",
	"09": "Brăila",
	"10": "Buzău",
	"11": "Caraș-Severin",
	"12": "Cluj",
	"13": "Constanța",
	"14": "Covasna",
	"15": "Dâmbovița",
	"16": "Dolj",
	"17": "Galați",
	"18": "Gorj",
	"19": "Harghita",
	"20": "Hunedoara",
	"21": "Ialomița",
	"22": "Iași",
	"23": "Ilfov",
	"24": "Maramureș",
	"25": "Mehedinți",
	"26": "Mureș",
	"27": "Neamț",
	"28": "Olt",
	"29": "Prahova",
	"30": "Satu Mare",
	"31": "Sălaj",
	"32": "Sibiu",
	"33": "Suceava",
	"34": "Teleorman",
	"35": "Timiș",
	"36": "Tulcea",
	"37": "Vaslui",
	"38": "Vâlcea",
	"39": "Vrancea",
	"40": "București",
	"41": "București - Sector 1",
	"42": "București - Sector 2",
	"43": "București - Sector 3",
	"44": "București - Sector 4",
	"45": "București - Sector 5",
	"46": "București - Sector 6",
	"51": "Călărași",
	"52": "Giurgiu",
}

var regionCodes = sortedRegionCodes()

func sortedRegionCodes() []string {
	codes := make([]string, 0, len(regions))
	for code := range regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LookupRegion returns the display name for a region code.
func LookupRegion(code string) (string, bool) {
	name, ok := regions[code]
	return name, ok
}

// RegionCodes returns all valid region codes in ascending order.
// The slice is a copy.
func RegionCodes() []string {
	out := make([]string, len(regionCodes))
	copy(out, regionCodes)
	return out
}
