package geocoding

import "strings"

// umlautReplacer folds German umlauts and ß to their ASCII transliterations,
// so "Köln" and "Koeln" normalize to the same table key.
var umlautReplacer = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// normalizeCityName produces the canonical lookup key for a city name.
func normalizeCityName(name string) string {
	return umlautReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// germanCities maps normalized city names to coordinates. Keys must already
// be in normalized form (lower case, umlauts transliterated). The table is
// never mutated after package init and is safe for concurrent readers.
var germanCities = map[string]Coordinates{
	"aachen":                {Lat: 50.7753, Lon: 6.0839},
	"augsburg":              {Lat: 48.3705, Lon: 10.8978},
	"bamberg":               {Lat: 49.8988, Lon: 10.9028},
	"berlin":                {Lat: 52.5200, Lon: 13.4050},
	"bielefeld":             {Lat: 52.0302, Lon: 8.5325},
	"bochum":                {Lat: 51.4818, Lon: 7.2162},
	"bonn":                  {Lat: 50.7374, Lon: 7.0982},
	"braunschweig":          {Lat: 52.2689, Lon: 10.5268},
	"bremen":                {Lat: 53.0793, Lon: 8.8017},
	"chemnitz":              {Lat: 50.8278, Lon: 12.9214},
	"cottbus":               {Lat: 51.7563, Lon: 14.3329},
	"dortmund":              {Lat: 51.5136, Lon: 7.4653},
	"dresden":               {Lat: 51.0504, Lon: 13.7373},
	"duesseldorf":           {Lat: 51.2277, Lon: 6.7735},
	"duisburg":              {Lat: 51.4344, Lon: 6.7623},
	"erfurt":                {Lat: 50.9848, Lon: 11.0299},
	"essen":                 {Lat: 51.4556, Lon: 7.0116},
	"flensburg":             {Lat: 54.7937, Lon: 9.4470},
	"frankfurt":             {Lat: 50.1109, Lon: 8.6821},
	"frankfurt am main":     {Lat: 50.1109, Lon: 8.6821},
	"freiburg":              {Lat: 47.9990, Lon: 7.8421},
	"freiburg im breisgau":  {Lat: 47.9990, Lon: 7.8421},
	"garmisch-partenkirchen":{Lat: 47.4917, Lon: 11.0955},
	"gelsenkirchen":         {Lat: 51.5177, Lon: 7.0857},
	"goettingen":            {Lat: 51.5413, Lon: 9.9158},
	"halle":                 {Lat: 51.4970, Lon: 11.9688},
	"hamburg":               {Lat: 53.5511, Lon: 9.9937},
	"hannover":              {Lat: 52.3759, Lon: 9.7320},
	"heidelberg":            {Lat: 49.3988, Lon: 8.6724},
	"jena":                  {Lat: 50.9271, Lon: 11.5892},
	"karlsruhe":             {Lat: 49.0069, Lon: 8.4037},
	"kassel":                {Lat: 51.3127, Lon: 9.4797},
	"kiel":                  {Lat: 54.3233, Lon: 10.1228},
	"koblenz":               {Lat: 50.3569, Lon: 7.5890},
	"koeln":                 {Lat: 50.9375, Lon: 6.9603},
	"konstanz":              {Lat: 47.6779, Lon: 9.1732},
	"krefeld":               {Lat: 51.3388, Lon: 6.5853},
	"leipzig":               {Lat: 51.3397, Lon: 12.3731},
	"luebeck":               {Lat: 53.8655, Lon: 10.6866},
	"magdeburg":             {Lat: 52.1205, Lon: 11.6276},
	"mainz":                 {Lat: 49.9929, Lon: 8.2473},
	"mannheim":              {Lat: 49.4875, Lon: 8.4660},
	"moenchengladbach":      {Lat: 51.1805, Lon: 6.4428},
	"muenchen":              {Lat: 48.1351, Lon: 11.5820},
	"muenster":              {Lat: 51.9607, Lon: 7.6261},
	"nuernberg":             {Lat: 49.4521, Lon: 11.0767},
	"oberhausen":            {Lat: 51.4963, Lon: 6.8638},
	"oldenburg":             {Lat: 53.1435, Lon: 8.2146},
	"osnabrueck":            {Lat: 52.2799, Lon: 8.0472},
	"passau":                {Lat: 48.5665, Lon: 13.4312},
	"potsdam":               {Lat: 52.3906, Lon: 13.0645},
	"regensburg":            {Lat: 49.0134, Lon: 12.1016},
	"rostock":               {Lat: 54.0924, Lon: 12.0991},
	"saarbruecken":          {Lat: 49.2402, Lon: 6.9969},
	"schwerin":              {Lat: 53.6355, Lon: 11.4012},
	"stuttgart":             {Lat: 48.7758, Lon: 9.1829},
	"trier":                 {Lat: 49.7596, Lon: 6.6441},
	"ulm":                   {Lat: 48.4011, Lon: 9.9876},
	"wiesbaden":             {Lat: 50.0782, Lon: 8.2398},
	"wuerzburg":             {Lat: 49.7913, Lon: 9.9534},
	"wuppertal":             {Lat: 51.2562, Lon: 7.1508},
}

// cityCoordinates looks up a city by any spelling that normalizes to a
// known key.
func cityCoordinates(name string) (Coordinates, bool) {
	c, ok := germanCities[normalizeCityName(name)]
	return c, ok
}
