package catalog

import (
	"sort"
	"strings"
)

// countyIDs maps the nine covered counties to their registry ids.
var countyIDs = map[string]int{
	"Makueni": 1, "Nyeri": 2, "Kakamega": 3, "Nakuru": 4, "Nyandarua": 5,
	"Meru": 6, "Kilifi": 7, "Mombasa": 8, "Nairobi": 9,
}

// subCountyIDs maps county -> sub-county -> registry id. Facilities whose
// sub-county is missing from the registry resolve to id 0.
var subCountyIDs = map[string]map[string]int{
	"Makueni": {"Makueni": 1, "Mbooni": 2, "Kaiti": 3, "Kibwezi East": 4, "Kibwezi West": 5, "Kilome": 6},
	"Nyeri": {"Kieni East": 7, "Kieni West": 8, "Mathira East": 9, "Mathira West": 10, "Othaya": 11,
		"Mukurweini": 12, "Nyeri Town": 13, "Tetu": 14},
	"Kakamega": {"Lukuyani": 15, "Butere": 16, "Mumias": 17, "Shinyalu": 18, "Matete": 19, "Lugari": 20,
		"Lurambi": 21, "Khwisero": 22, "Mutungu": 23, "Navakholo": 24, "Kakamega South": 25,
		"Kakamega Central": 26, "Kakamega East": 27, "Kakamega North": 28},
	"Nakuru": {"Nakuru Town East": 29, "Nakuru Town West": 30, "Naivasha": 31, "Molo": 32, "Gilgil": 33,
		"Bahati": 34, "Kuresoi North": 35, "Kuresoi South": 36, "Njoro": 37, "Rongai": 38, "Subukia": 39},
	"Nyandarua": {"Ol Kalou": 40, "Kipipiri": 41, "Ndaragwa": 42, "Kinangop": 43, "Ol Joro Orok": 44},
	"Meru": {"Imenti Central": 45, "Imenti North": 46, "Imenti South": 47, "Tigania East": 48, "Tigania West": 49,
		"Buuri": 50, "Igembe Central": 51, "Igembe North": 52, "Igembe South": 53},
	"Kilifi": {"Kilifi North": 54, "Kilifi South": 55, "Malindi": 56, "Magarini": 57, "Ganze": 58, "Rabai": 59, "Kaloleni": 60},
	"Mombasa": {"Mvita": 61, "Kisauni": 62, "Changamwe": 63, "Likoni": 64, "Jomvu": 65, "Nyali": 66},
	"Nairobi": {"Dagoretti North": 67, "Dagoretti South": 68, "Embakasi Central": 69, "Embakasi East": 70,
		"Embakasi North": 71, "Embakasi South": 72, "Embakasi West": 73, "Kamukunji": 74, "Kasarani": 75,
		"Lang'ata": 76, "Westlands": 77, "Kibra": 78, "Makadara": 79, "Mathare": 80, "Ruaraka": 81,
		"Starehe": 82, "Roysambu": 83},
}

type facility struct {
	name      string
	county    string
	subCounty string
}

// facilityRoster is the fixed network of real facilities, ordered so that
// site ids are assigned deterministically starting from 1.
var facilityRoster = []facility{
	// Makueni
	{"Makueni County Referral Hospital", "Makueni", "Makueni"},
	{"Kibwezi Sub-County Hospital", "Makueni", "Kibwezi East"},
	{"Kilungu Sub-County Hospital", "Makueni", "Kaiti"},
	{"Makindu Sub-County Hospital", "Makueni", "Kibwezi West"},
	{"Sultan Hamud Health Centre", "Makueni", "Kilome"},
	{"Wote Health Centre", "Makueni", "Makueni"},
	{"Matiliku Health Centre", "Makueni", "Makueni"},
	{"Kambu Health Centre", "Makueni", "Kibwezi East"},
	{"Kathonzweni Health Centre", "Makueni", "Makueni"},
	{"Emali Model Health Centre", "Makueni", "Kibwezi West"},
	// Nyeri
	{"Nyeri County Referral Hospital", "Nyeri", "Nyeri Town"},
	{"Karatina Sub-County Hospital", "Nyeri", "Mathira East"},
	{"Othaya Sub-County Hospital", "Nyeri", "Nyeri Town"},
	{"Mukurweini Sub-County Hospital", "Nyeri", "Mukurweini"},
	{"Naromoru Health Centre", "Nyeri", "Kieni East"},
	{"Tumutumu PCEA Hospital", "Nyeri", "Mathira West"},
	{"Wamagana Health Centre", "Nyeri", "Tetu"},
	{"Gichiche Health Centre", "Nyeri", "Nyeri Town"},
	{"Chaka Health Centre", "Nyeri", "Kieni East"},
	{"Mweiga Health Centre", "Nyeri", "Kieni West"},
	// Kakamega
	{"Kakamega County Referral Hospital", "Kakamega", "Lurambi"},
	{"Butere Sub-County Hospital", "Kakamega", "Butere"},
	{"Mumias County Hospital", "Kakamega", "Mumias West"},
	{"Malava Sub-County Hospital", "Kakamega", "Malava"},
	{"Mautuma County Hospital", "Kakamega", "Lugari"},
	{"Khwisero Sub-County Hospital", "Kakamega", "Khwisero"},
	{"Matungu Sub-County Hospital", "Kakamega", "Matungu"},
	{"Navakholo Sub-County Hospital", "Kakamega", "Navakholo"},
	{"Likuyani Sub-County Hospital", "Kakamega", "Likuyani"},
	{"Sheywe Community Hospital Limited", "Kakamega", "Shinyalu"},
	// Nakuru
	{"Nakuru Level 5 Hospital", "Nakuru", "Nakuru Town West"},
	{"Naivasha Sub-County Hospital", "Nakuru", "Naivasha"},
	{"Molo Sub-County Hospital", "Nakuru", "Molo"},
	{"Gilgil Sub-County Hospital", "Nakuru", "Gilgil"},
	{"Bahati Sub-County Hospital", "Nakuru", "Bahati"},
	{"Subukia Sub-County Hospital", "Nakuru", "Subukia"},
	{"Keringet Sub County Hospital", "Nakuru", "Kuresoi South"},
	{"Elburgon Sub-County Hospital", "Nakuru", "Molo"},
	{"Njoro Sub-County Hospital", "Nakuru", "Njoro"},
	{"Rongai Health Centre", "Nakuru", "Rongai"},
	// Nyandarua
	{"JM Kariuki Memorial Hospital", "Nyandarua", "Ol Kalou"},
	{"Engineer Sub-County Hospital", "Nyandarua", "Kinangop"},
	{"Ndaragwa Health Centre", "Nyandarua", "Ndaragwa"},
	{"Mirangine Health Centre", "Nyandarua", "Ol Kalou"},
	{"Kimathi Dispensary-Kipipiri Sub County", "Nyandarua", "Kipipiri"},
	{"Ol Joro Orok Medical Clinic", "Nyandarua", "Ol Joro Orok"},
	{"Amani Medical Clinic", "Nyandarua", "Kinangop"},
	{"Wanjohi Health Centre", "Nyandarua", "Kipipiri"},
	{"Shamata Health Centre", "Nyandarua", "Ndaragwa"},
	{"Leshau Pondo Health Centre", "Nyandarua", "Ndaragwa"},
	// Nairobi
	{"Kenyatta National Hospital", "Nairobi", "Kibra"},
	{"Mama Lucy Kibaki Hospital", "Nairobi", "Embakasi Central"},
	{"Mbagathi County Referral Hospital", "Nairobi", "Kibra"},
	{"Pumwani Maternity Hospital", "Nairobi", "Kamukunji"},
	{"Dagoretti Sub-County Hospital Mutuini", "Nairobi", "Dagoretti South"},
	{"Kangemi Health Centre", "Nairobi", "Westlands"},
	{"Riruta Health Centre", "Nairobi", "Dagoretti North"},
	{"Kayole II Sub County Hospital", "Nairobi", "Embakasi Central"},
	{"Kasarani Health Centre", "Nairobi", "Kasarani"},
	{"Dandora II Health Centre", "Nairobi", "Embakasi North"},
	// Mombasa
	{"Coast General Teaching and Referral Hospital Vikwatani Outreach Centre", "Mombasa", "Kisauni"},
	{"Port Reitz Sub-County Hospital", "Mombasa", "Changamwe"},
	{"Tudor District Hospital", "Mombasa", "Mvita"},
	{"Magongo (MCM) Dispensary", "Mombasa", "Changamwe"},
	{"Likoni Sub-County Hospital", "Mombasa", "Likoni"},
	{"Jomvu Model Health Centre", "Mombasa", "Jomvu"},
	{"Kisauni Health Centre", "Mombasa", "Nyali"},
	{"Bamburi Dispensary", "Mombasa", "Nyali"},
	{"Coast General Teaching Refferal Hospital - Mtongwe Outreach Centre", "Mombasa", "Likoni"},
	{"Diani Beach Hospital Limited - Shika Adabu", "Mombasa", "Jomvu"},
	{"Mikindani Medical Clinic", "Mombasa", "Jomvu"},
	// Kilifi
	{"Kilifi County Hospital", "Kilifi", "Kilifi North"},
	{"Malindi Sub-County Hospital", "Kilifi", "Malindi"},
	{"Mariakani Sub-County Hospital", "Kilifi", "Kaloleni"},
	{"Rabai Sub County Hospital", "Kilifi", "Rabai"},
	{"Ganze Health Centre", "Kilifi", "Ganze"},
	{"Bamba Sub County Hospital", "Kilifi", "Ganze"},
	{"Mtwapa Sub County Hospital", "Kilifi", "Kilifi South"},
	{"Chasimba Health Centre", "Kilifi", "Kilifi South"},
	{"Vipingo Rural Demonstration Health Centre", "Kilifi", "Kilifi South"},
	{"Matsangoni Model Health Centre", "Kilifi", "Kilifi North"},
	// Meru
	{"Meru Teaching & Referral Hospital", "Meru", "Imenti North"},
	{"Consolata Mission Hospital Nkubu", "Meru", "Imenti South"},
	{"Maua Methodist Hospital", "Meru", "Igembe South"},
	{"Muthara Sub-District Hospital", "Meru", "Tigania East"},
	{"Miathene Sub-County Hospital", "Meru", "Tigania West"},
	{"Laare Health Centre", "Meru", "Igembe North"},
	{"Kanyakine Sub County Hospital", "Meru", "Imenti South"},
	{"Kangeta Sub County Hospital", "Meru", "Igembe Central"},
	{"Timau Sub-County Hospital", "Meru", "Buuri West"},
	{"Gatimbi Health Centre", "Meru", "Imenti Central"},
}

// siteTypes is checked in order against the facility name; first match wins.
var siteTypes = []string{"Dispensary", "Health Centre", "Hospital", "Sub-County Hospital", "County Referral Hospital"}

// rolePool gives the weighted staff mix: four CHVs and three nurses for
// every doctor, data officer, lab technician and pharmacist.
var rolePool = []string{
	"CHV", "CHV", "CHV", "CHV",
	"Nurse", "Nurse", "Nurse",
	"Doctor", "Data Officer", "Lab Technician", "Pharmacist",
}

var firstNames = []string{
	"Wanjiku", "Otieno", "Achieng", "Kamau", "Mutua", "Chebet", "Kiprop", "Nyambura",
	"Omondi", "Wafula", "Atieno", "Njoroge", "Mwangi", "Akinyi", "Kiptoo", "Wambui",
	"Barasa", "Nekesa", "Maina", "Adhiambo", "Kilonzo", "Moraa", "Gitau", "Jepkorir",
	"Ochieng", "Wairimu", "Mutiso", "Chepkemoi", "Karanja", "Awino",
}

var lastNames = []string{
	"Mwangi", "Odhiambo", "Kariuki", "Wanjala", "Mutinda", "Koech", "Njeri", "Oduya",
	"Kimani", "Simiyu", "Onyango", "Githinji", "Langat", "Okoth", "Ndegwa", "Juma",
	"Cheruiyot", "Obara", "Macharia", "Were", "Musyoka", "Nyong'o", "Kibet", "Oloo",
}

// siteTypeFor infers the facility tier from its registered name. The
// candidate list is checked in order and the first substring match wins.
func siteTypeFor(name string) string {
	for _, t := range siteTypes {
		if strings.Contains(name, t) {
			return t
		}
	}
	return "Health Centre"
}

// organisationFor classifies the operating organisation from naming
// conventions used in the facility registry.
func organisationFor(name string) string {
	switch {
	case strings.Contains(name, "County Referral Hospital"),
		strings.Contains(name, "Sub-County"),
		strings.Contains(name, "Health Centre"):
		return "Ministry of Health"
	case strings.Contains(name, "PCEA"),
		strings.Contains(name, "Methodist"),
		strings.Contains(name, "Consolata"):
		return "Faith-Based Organization"
	case strings.Contains(name, "Medical Clinic"),
		strings.Contains(name, "Dispensary"):
		return "Private Practice"
	case strings.Contains(name, "Diani Beach Hospital"):
		return "Private Hospital"
	default:
		return "Ministry of Health"
	}
}

// Location is one (county, sub-county) pair from the registry, exposed
// for downstream generators that address patients geographically.
type Location struct {
	CountyID      int
	CountyName    string
	SubCountyID   int
	SubCountyName string
}

// Locations returns every registered sub-county ordered by sub-county id,
// so indexed picks are stable across runs.
func Locations() []Location {
	var out []Location
	for county, subs := range subCountyIDs {
		cid := countyIDs[county]
		for sub, sid := range subs {
			out = append(out, Location{CountyID: cid, CountyName: county, SubCountyID: sid, SubCountyName: sub})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubCountyID < out[j].SubCountyID })
	return out
}
