// Package district holds the closed master list of supported administrative
// districts and every lookup that turns a raw name into a validated one.
package district

import (
	"strings"

	"github.com/agrovision/cropadvisor/internal/domain"
)

// Names is the closed, ordered master list. 31 districts of the supported
// region; nothing outside this list ever leaves Normalize.
var Names = []domain.District{
	"Adilabad",
	"Bhadradri Kothagudem",
	"Hanumakonda",
	"Hyderabad",
	"Jagtial",
	"Jangaon",
	"Jayashankar Bhupalpally",
	"Jogulamba Gadwal",
	"Kamareddy",
	"Karimnagar",
	"Khammam",
	"Komaram Bheem Asifabad",
	"Mahabubabad",
	"Mahabubnagar",
	"Mancherial",
	"Medak",
	"Medchal-Malkajgiri",
	"Nagarkurnool",
	"Nalgonda",
	"Nirmal",
	"Nizamabad",
	"Peddapalli",
	"Rajanna Sircilla",
	"Rangareddy",
	"Sangareddy",
	"Siddipet",
	"Suryapet",
	"Vikarabad",
	"Wanaparthy",
	"Warangal",
	"Yadadri Bhuvanagiri",
}

// aliases maps known alternate spellings and legacy names to master-list
// entries. Keys are lowercase.
var aliases = map[string]domain.District{
	"warangal urban": "Hanumakonda",
	"warangal rural": "Warangal",
	"medchal malkajgiri": "Medchal-Malkajgiri",
	"medchal": "Medchal-Malkajgiri",
	"ranga reddy": "Rangareddy",
	"rangareddi": "Rangareddy",
	"k.v. rangareddy": "Rangareddy",
	"secunderabad": "Hyderabad",
	"mahbubnagar": "Mahabubnagar",
	"mahabub nagar": "Mahabubnagar",
	"bhongir": "Yadadri Bhuvanagiri",
	"yadadri": "Yadadri Bhuvanagiri",
	"bhupalpally": "Jayashankar Bhupalpally",
	"jayashankar": "Jayashankar Bhupalpally",
	"gadwal": "Jogulamba Gadwal",
	"jogulamba": "Jogulamba Gadwal",
	"sircilla": "Rajanna Sircilla",
	"rajanna": "Rajanna Sircilla",
	"asifabad": "Komaram Bheem Asifabad",
	"komaram bheem": "Komaram Bheem Asifabad",
	"komarambheem": "Komaram Bheem Asifabad",
	"kothagudem": "Bhadradri Kothagudem",
	"bhadradri": "Bhadradri Kothagudem",
	"nalgonda district": "Nalgonda",
	"hanamkonda": "Hanumakonda",
	"karim nagar": "Karimnagar",
	"nizambad": "Nizamabad",
}

var index = func() map[string]domain.District {
	m := make(map[string]domain.District, len(Names))
	for _, d := range Names {
		m[canon(d)] = d
	}
	return m
}()

func canon(d domain.District) string {
	return strings.ToLower(strings.Join(strings.Fields(string(d)), " "))
}

// IsValid reports whether name normalizes to a master-list district.
func IsValid(name string) bool {
	_, ok := Normalize(name)
	return ok
}

// Normalize maps a raw district name onto the master list. Precedence:
// exact case-insensitive match, then the alias table, then substring
// containment in either direction. A miss returns ok=false; it is a valid
// "unsupported" outcome, not an error.
func Normalize(name string) (domain.District, bool) {
	key := canon(domain.District(name))
	if key == "" {
		return "", false
	}

	if d, ok := index[key]; ok {
		return d, true
	}

	if d, ok := aliases[key]; ok {
		return d, true
	}

	for _, d := range Names {
		c := canon(d)
		if strings.Contains(key, c) || strings.Contains(c, key) {
			return d, true
		}
	}

	return "", false
}
