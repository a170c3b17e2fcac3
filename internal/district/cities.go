package district

import (
	"strings"

	"github.com/agrovision/cropadvisor/internal/domain"
)

// cityIndex maps IP-geolocation city names onto districts. Keys are
// lowercase. A miss is an unsupported location, not an error.
var cityIndex = map[string]domain.District{
	"hyderabad": "Hyderabad",
	"secunderabad": "Hyderabad",
	"warangal": "Warangal",
	"hanamkonda": "Hanumakonda",
	"karimnagar": "Karimnagar",
	"nizamabad": "Nizamabad",
	"khammam": "Khammam",
	"ramagundam": "Peddapalli",
	"mahbubnagar": "Mahabubnagar",
	"mahabubnagar": "Mahabubnagar",
	"nalgonda": "Nalgonda",
	"miryalaguda": "Nalgonda",
	"adilabad": "Adilabad",
	"siddipet": "Siddipet",
	"suryapet": "Suryapet",
	"jagtial": "Jagtial",
	"mancherial": "Mancherial",
	"kothagudem": "Bhadradri Kothagudem",
	"palwancha": "Bhadradri Kothagudem",
	"bodhan": "Nizamabad",
	"kamareddy": "Kamareddy",
	"sangareddy": "Sangareddy",
	"medak": "Medak",
	"vikarabad": "Vikarabad",
	"wanaparthy": "Wanaparthy",
	"gadwal": "Jogulamba Gadwal",
	"nagarkurnool": "Nagarkurnool",
	"bhongir": "Yadadri Bhuvanagiri",
	"bhuvanagiri": "Yadadri Bhuvanagiri",
	"jangaon": "Jangaon",
	"mahabubabad": "Mahabubabad",
	"nirmal": "Nirmal",
	"sircilla": "Rajanna Sircilla",
	"peddapalli": "Peddapalli",
	"bhupalpally": "Jayashankar Bhupalpally",
	"asifabad": "Komaram Bheem Asifabad",
	"kompally": "Medchal-Malkajgiri",
	"shamshabad": "Rangareddy",
	"lb nagar": "Rangareddy",
	"malkajgiri": "Medchal-Malkajgiri",
	"kukatpally": "Medchal-Malkajgiri",
}

// FromCity maps an IP-derived city name to its district.
func FromCity(city string) (domain.District, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(city), " "))
	d, ok := cityIndex[key]
	return d, ok
}
