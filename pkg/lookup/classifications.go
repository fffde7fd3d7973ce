package lookup

import (
	"fmt"
	"strings"
)

// ClassificationInfo describes one hadith authenticity grade.
type ClassificationInfo struct {
	Arabic     string
	Meaning    string
	Definition string
	Usage      string
	Example    string
}

var classifications = map[string]ClassificationInfo{
	"sahih": {
		Arabic:     "صحيح",
		Meaning:    "Authentic/Sound",
		Definition: "A hadith with a continuous chain of trustworthy narrators, no defects, and no irregularities",
		Usage:      "Can be used as proof in Islamic law",
		Example:    "Hadiths in Sahih Bukhari and Sahih Muslim",
	},
	"hasan": {
		Arabic:     "حسن",
		Meaning:    "Good",
		Definition: "Similar to Sahih but with slightly less strict narrator reliability",
		Usage:      "Can be used as proof, though slightly weaker than Sahih",
		Example:    "Many hadiths in Jami' at-Tirmidhi",
	},
	"daif": {
		Arabic:     "ضعيف",
		Meaning:    "Weak",
		Definition: "A hadith with a break in the chain or unreliable narrator",
		Usage:      "Cannot be used as primary proof, but may be used for virtuous deeds",
		Example:    "Some hadiths in Sunan Ibn Majah",
	},
	"mawdu": {
		Arabic:     "موضوع",
		Meaning:    "Fabricated/Forged",
		Definition: "A hadith that is completely fabricated and falsely attributed",
		Usage:      "Completely rejected and cannot be used",
		Example:    "Various fabricated hadiths identified by hadith critics",
	},
	"mutawatir": {
		Arabic:     "متواتر",
		Meaning:    "Continuously Recurrent",
		Definition: "Narrated by so many people at each level that fabrication is impossible",
		Usage:      "Highest level of certainty, equivalent to definitive knowledge",
		Example:    "The five daily prayers",
	},
}

// Classification explains a hadith authenticity grade. Unknown terms
// get guidance text listing the main grades.
func Classification(term string) string {
	key := strings.ToLower(strings.TrimSpace(term))

	info, ok := classifications[key]
	if !ok {
		return fmt.Sprintf(
			"I don't have specific information about '%s' classification. "+
				"The main classifications are: Sahih (Authentic), Hasan (Good), Da'if (Weak), "+
				"Mawdu' (Fabricated), and Mutawatir (Continuously Recurrent). "+
				"Would you like to know about any of these?", term)
	}

	return fmt.Sprintf(
		"**%s (%s)**\nMeaning: %s\n\nDefinition: %s\n\nUsage in Islamic Law: %s\n\nExample: %s",
		strings.ToUpper(term), info.Arabic, info.Meaning, info.Definition, info.Usage, info.Example)
}
