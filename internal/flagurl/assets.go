package flagurl

// DefaultAssets returns the country code to Cloudinary public ID table.
// Callers get a fresh map; the Builder keeps its own copy so the table stays
// immutable after startup.
func DefaultAssets() map[string]string {
	assets := make(map[string]string, len(flagAssets))
	for code, id := range flagAssets {
		assets[code] = id
	}
	return assets
}

var flagAssets = map[string]string{
	"AD": "flags/ad", "AE": "flags/ae", "AF": "flags/af", "AG": "flags/ag",
	"AL": "flags/al", "AM": "flags/am", "AO": "flags/ao", "AR": "flags/ar",
	"AT": "flags/at", "AU": "flags/au", "AZ": "flags/az", "BA": "flags/ba",
	"BB": "flags/bb", "BD": "flags/bd", "BE": "flags/be", "BF": "flags/bf",
	"BG": "flags/bg", "BH": "flags/bh", "BI": "flags/bi", "BJ": "flags/bj",
	"BN": "flags/bn", "BO": "flags/bo", "BR": "flags/br", "BS": "flags/bs",
	"BT": "flags/bt", "BW": "flags/bw", "BY": "flags/by", "BZ": "flags/bz",
	"CA": "flags/ca", "CD": "flags/cd", "CF": "flags/cf", "CG": "flags/cg",
	"CH": "flags/ch", "CI": "flags/ci", "CL": "flags/cl", "CM": "flags/cm",
	"CN": "flags/cn", "CO": "flags/co", "CR": "flags/cr", "CU": "flags/cu",
	"CV": "flags/cv", "CY": "flags/cy", "CZ": "flags/cz", "DE": "flags/de",
	"DJ": "flags/dj", "DK": "flags/dk", "DM": "flags/dm", "DO": "flags/do",
	"DZ": "flags/dz", "EC": "flags/ec", "EE": "flags/ee", "EG": "flags/eg",
	"ER": "flags/er", "ES": "flags/es", "ET": "flags/et", "FI": "flags/fi",
	"FJ": "flags/fj", "FM": "flags/fm", "FR": "flags/fr", "GA": "flags/ga",
	"GB": "flags/gb", "GD": "flags/gd", "GE": "flags/ge", "GH": "flags/gh",
	"GM": "flags/gm", "GN": "flags/gn", "GQ": "flags/gq", "GR": "flags/gr",
	"GT": "flags/gt", "GW": "flags/gw", "GY": "flags/gy", "HN": "flags/hn",
	"HR": "flags/hr", "HT": "flags/ht", "HU": "flags/hu", "ID": "flags/id",
	"IE": "flags/ie", "IL": "flags/il", "IN": "flags/in", "IQ": "flags/iq",
	"IR": "flags/ir", "IS": "flags/is", "IT": "flags/it", "JM": "flags/jm",
	"JO": "flags/jo", "JP": "flags/jp", "KE": "flags/ke", "KG": "flags/kg",
	"KH": "flags/kh", "KI": "flags/ki", "KM": "flags/km", "KN": "flags/kn",
	"KP": "flags/kp", "KR": "flags/kr", "KW": "flags/kw", "KZ": "flags/kz",
	"LA": "flags/la", "LB": "flags/lb", "LC": "flags/lc", "LI": "flags/li",
	"LK": "flags/lk", "LR": "flags/lr", "LS": "flags/ls", "LT": "flags/lt",
	"LU": "flags/lu", "LV": "flags/lv", "LY": "flags/ly", "MA": "flags/ma",
	"MC": "flags/mc", "MD": "flags/md", "ME": "flags/me", "MG": "flags/mg",
	"MH": "flags/mh", "MK": "flags/mk", "ML": "flags/ml", "MM": "flags/mm",
	"MN": "flags/mn", "MR": "flags/mr", "MT": "flags/mt", "MU": "flags/mu",
	"MV": "flags/mv", "MW": "flags/mw", "MX": "flags/mx", "MY": "flags/my",
	"MZ": "flags/mz", "NA": "flags/na", "NE": "flags/ne", "NG": "flags/ng",
	"NI": "flags/ni", "NL": "flags/nl", "NO": "flags/no", "NP": "flags/np",
	"NR": "flags/nr", "NZ": "flags/nz", "OM": "flags/om", "PA": "flags/pa",
	"PE": "flags/pe", "PG": "flags/pg", "PH": "flags/ph", "PK": "flags/pk",
	"PL": "flags/pl", "PS": "flags/ps", "PT": "flags/pt", "PW": "flags/pw",
	"PY": "flags/py", "QA": "flags/qa", "RO": "flags/ro", "RS": "flags/rs",
	"RU": "flags/ru", "RW": "flags/rw", "SA": "flags/sa", "SB": "flags/sb",
	"SC": "flags/sc", "SD": "flags/sd", "SE": "flags/se", "SG": "flags/sg",
	"SI": "flags/si", "SK": "flags/sk", "SL": "flags/sl", "SM": "flags/sm",
	"SN": "flags/sn", "SO": "flags/so", "SR": "flags/sr", "SS": "flags/ss",
	"ST": "flags/st", "SV": "flags/sv", "SY": "flags/sy", "SZ": "flags/sz",
	"TD": "flags/td", "TG": "flags/tg", "TH": "flags/th", "TJ": "flags/tj",
	"TL": "flags/tl", "TM": "flags/tm", "TN": "flags/tn", "TO": "flags/to",
	"TR": "flags/tr", "TT": "flags/tt", "TV": "flags/tv", "TW": "flags/tw",
	"TZ": "flags/tz", "UA": "flags/ua", "UG": "flags/ug", "US": "flags/us",
	"UY": "flags/uy", "UZ": "flags/uz", "VA": "flags/va", "VC": "flags/vc",
	"VE": "flags/ve", "VN": "flags/vn", "VU": "flags/vu", "WS": "flags/ws",
	"YE": "flags/ye", "ZA": "flags/za", "ZM": "flags/zm", "ZW": "flags/zw",
}
