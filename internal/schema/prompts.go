package schema

// promptEntry is the raw extraction question for one prompt key. Options and
// allowed answers drive type inference for fields that do not declare an
// explicit type.
type promptEntry struct {
	question       string
	allowedAnswers []string
	options        []string
}

// Per-language system prefix prepended to every question body.
const (
	promptPrefixEN = "You are nuclear medicine expert. Based on the provided clinical information, "
	promptPrefixDE = "Sie sind Experte für Nuklearmedizin. Beantworten Sie anhand der vorliegenden klinischen Informationen: "
)

var yesNo = []string{"Yes", "No"}

// promptTable maps prompt key to its English question body. The full
// question handed to the backend is prefix + body.
var promptTable = map[string]promptEntry{
	// Clinical History & Procedure
	"Indication for the scan": {
		question: "what is the indication for the PSMA PET/CT scan?",
		options: []string{
			"Primary staging",
			"CRPC/Recurrent restaging",
			"PSMA expression assessment for PSMA targeted therapy",
		},
	},
	"Date of initiation of last/recurrent therapy": {
		question: "what is the date of initiation of last/recurrent therapy (dd/mm/yyyy)?",
	},
	"Radical prostatectomy": {
		question:       "has the patient undergone radical prostatectomy?",
		allowedAnswers: yesNo,
	},
	"External beam radiation to prostate": {
		question:       "has the patient received external beam radiation to prostate?",
		allowedAnswers: yesNo,
	},
	"Post-prostatectomy external beam radiation": {
		question:       "has the patient received post-prostatectomy external beam radiation?",
		allowedAnswers: yesNo,
	},
	"Brachytherapy to prostate": {
		question:       "has the patient undergone brachytherapy to prostate?",
		allowedAnswers: yesNo,
	},
	"Androgen deprivation therapy": {
		question:       "has the patient received androgen deprivation therapy?",
		allowedAnswers: yesNo,
	},
	"ARPI (i.e., abiraterone)": {
		question:       "has the patient received ARPI (i.e., abiraterone)?",
		allowedAnswers: yesNo,
	},
	"Chemotherapy": {
		question:       "has the patient undergone chemotherapy?",
		allowedAnswers: yesNo,
	},
	"Other therapies": {
		question: "what other therapies has the patient received?",
	},
	"Most recent PSA levels (ng/mL)": {
		question: "what is the most recent PSA level (ng/mL)?",
	},
	"Date of PSA measurement": {
		question: "what is the date of the most recent PSA measurement (dd/mm/yyyy)?",
	},

	// Comparison or Prior Imaging
	"Radiopharmaceutical used": {
		question: "what radiopharmaceutical was used for the PSMA PET/CT scan?",
	},
	"Dosage and Injection Time": {
		question: "what was the dosage and injection time for the PSMA PET/CT scan?",
	},

	// Accompanying CT
	"Accompanying CT": {
		question: "what type of CT scan accompanied the PSMA PET scan?",
		options: []string{
			"Attenuation Correction Only",
			"Diagnostic with contrast",
			"Diagnostic without contrast",
		},
	},

	// Background Reference Uptake
	"Liver SUV mean": {
		question: "what is the liver SUV mean?",
	},
	"Liver lesion present": {
		question:       "is there a liver lesion present?",
		allowedAnswers: yesNo,
	},
	"Blood pool SUV mean": {
		question: "what is the blood pool SUV mean?",
	},
	"Blood pool lesion present": {
		question:       "is there a blood pool lesion present?",
		allowedAnswers: yesNo,
	},
	"Other SUV mean": {
		question: "what is the other SUV mean (if available)?",
	},
	"Other lesion present": {
		question:       "are there any other lesions present?",
		allowedAnswers: yesNo,
	},

	// Prostate Gland
	"Prostate Gland lesions": {
		question:       "are there lesions in the prostate gland?",
		allowedAnswers: yesNo,
	},
	"Prostate Gland number of lesions": {
		question: "how many lesions are present in the prostate gland?",
	},
	"Prostate Gland SUVmax": {
		question: "what is the SUVmax of the prostate gland lesion(s)?",
	},
	"Prostate Gland localization": {
		question: "what is the localization of the prostate gland lesion(s)?",
		options:  []string{"Left", "Right", "Base", "Mid", "Apical", "Anterior", "Posterior"},
	},

	// Prostate Bed (Post-Prostatectomy)
	"Prostate Bed lesions": {
		question:       "are there lesions in the prostate bed (post-prostatectomy)?",
		allowedAnswers: yesNo,
	},
	"Prostate Bed number of lesions": {
		question: "how many lesions are present in the prostate bed?",
	},
	"Prostate Bed SUVmax": {
		question: "what is the SUVmax of the prostate bed lesion(s)?",
	},
	"Prostate Bed localization": {
		question: "what is the localization of the prostate bed lesion(s)?",
		options:  []string{"Left", "Right", "Base", "Mid", "Apical", "Anterior", "Posterior"},
	},

	// Seminal Vesicles
	"Seminal Vesicles lesions": {
		question:       "are there lesions in the seminal vesicles?",
		allowedAnswers: yesNo,
	},
	"Seminal Vesicles number of lesions": {
		question: "how many lesions are present in the seminal vesicles?",
	},
	"Seminal Vesicles SUVmax": {
		question: "what is the SUVmax of the seminal vesicles lesion(s)?",
	},
	"Seminal Vesicles localization": {
		question: "what is the localization of the seminal vesicles lesion(s)?",
		options:  []string{"Left", "Right"},
	},

	// Pelvic LN(s)
	"Pelvic LN lesions": {
		question:       "are there pelvic lymph node lesions?",
		allowedAnswers: yesNo,
	},
	"External Iliac lesion": {
		question:       "are there external iliac lesions?",
		allowedAnswers: yesNo,
	},
	"External Iliac size and SUVmax": {
		question: "what is the size and SUVmax of the external iliac lesion(s)?",
	},
	"External Iliac notes": {
		question: "what are the notes for the external iliac lesion(s)?",
	},
	"Internal Iliac lesion": {
		question:       "are there internal iliac lesions?",
		allowedAnswers: yesNo,
	},
	"Internal Iliac size and SUVmax": {
		question: "what is the size and SUVmax of the internal iliac lesion(s)?",
	},
	"Internal Iliac notes": {
		question: "what are the notes for the internal iliac lesion(s)?",
	},
	"Obturator lesion": {
		question:       "are there obturator lesions?",
		allowedAnswers: yesNo,
	},
	"Obturator size and SUVmax": {
		question: "what is the size and SUVmax of the obturator lesion(s)?",
	},
	"Obturator notes": {
		question: "what are the notes for the obturator lesion(s)?",
	},
	"Common iliac lesion": {
		question:       "are there common iliac lesions?",
		allowedAnswers: yesNo,
	},
	"Common iliac size and SUVmax": {
		question: "what is the size and SUVmax of the common iliac lesion(s)?",
	},
	"Common iliac notes": {
		question: "what are the notes for the common iliac lesion(s)?",
	},
	"Perirectal lesion": {
		question:       "are there perirectal lesions?",
		allowedAnswers: yesNo,
	},
	"Perirectal size and SUVmax": {
		question: "what is the size and SUVmax of the perirectal lesion(s)?",
	},
	"Perirectal notes": {
		question: "what are the notes for the perirectal lesion(s)?",
	},
	"Presacral lesion": {
		question:       "are there presacral lesions?",
		allowedAnswers: yesNo,
	},
	"Presacral size and SUVmax": {
		question: "what is the size and SUVmax of the presacral lesion(s)?",
	},
	"Presacral notes": {
		question: "what are the notes for the presacral lesion(s)?",
	},
	"Other Pelvic LN lesion": {
		question:       "are there other pelvic lymph node lesions?",
		allowedAnswers: yesNo,
	},
	"Other Pelvic LN size and SUVmax": {
		question: "what is the size and SUVmax of the other pelvic lymph node lesion(s)?",
	},
	"Other Pelvic LN notes": {
		question: "what are the notes for the other pelvic lymph node lesion(s)?",
	},

	// Extra-pelvic LN(s)
	"Extra-pelvic LN lesions": {
		question:       "are there extra-pelvic lymph node lesions?",
		allowedAnswers: yesNo,
	},
	"Abdominal lesion": {
		question:       "are there abdominal lymph node lesions?",
		allowedAnswers: yesNo,
	},
	"Abdominal size and SUVmax": {
		question: "what is the size and SUVmax of the abdominal lymph node lesion(s)?",
	},
	"Abdominal notes": {
		question: "what are the notes for the abdominal lymph node lesion(s)?",
	},
	"Thoracic lesion": {
		question:       "are there thoracic lymph node lesions?",
		allowedAnswers: yesNo,
	},
	"Thoracic size and SUVmax": {
		question: "what is the size and SUVmax of the thoracic lymph node lesion(s)?",
	},
	"Thoracic notes": {
		question: "what are the notes for the thoracic lymph node lesion(s)?",
	},
	"Supraclavicular lesion": {
		question:       "are there supraclavicular lymph node lesions?",
		allowedAnswers: yesNo,
	},
	"Supraclavicular size and SUVmax": {
		question: "what is the size and SUVmax of the supraclavicular lymph node lesion(s)?",
	},
	"Supraclavicular notes": {
		question: "what are the notes for the supraclavicular lymph node lesion(s)?",
	},
	"Other Extra-pelvic LN lesion": {
		question:       "are there other extra-pelvic lymph node lesions?",
		allowedAnswers: yesNo,
	},
	"Other Extra-pelvic LN size and SUVmax": {
		question: "what is the size and SUVmax of the other extra-pelvic lymph node lesion(s)?",
	},
	"Other Extra-pelvic LN notes": {
		question: "what are the notes for the other extra-pelvic lymph node lesion(s)?",
	},

	// Skeletal/Bone Metastases
	"Skeletal lesions": {
		question:       "are there skeletal lesions?",
		allowedAnswers: yesNo,
	},
	"Skeletal number of lesions": {
		question:       "how many skeletal lesions are present?",
		allowedAnswers: []string{"0", "1", "2-4", "5+"},
	},
	"Bone marrow involvement": {
		question:       "is there bone marrow involvement?",
		allowedAnswers: yesNo,
	},
	"Skeletal localization notes": {
		question: "what are the localization notes for the skeletal lesion(s)?",
	},

	// Visceral Metastases
	"Visceral lesions": {
		question:       "are there visceral metastases?",
		allowedAnswers: yesNo,
	},
	"Visceral localization": {
		question: "what is the localization of the visceral metastases?",
		options:  []string{"Lung", "Liver", "Brain", "Other"},
	},
	"Visceral size and SUVmax": {
		question: "what is the size and SUVmax of the visceral metastases?",
	},
	"Visceral notes": {
		question: "what are the notes for the visceral metastases?",
	},

	// PSMA-negative lesions
	"PSMA-negative lesions": {
		question:       "are there PSMA-negative lesions noted on CT?",
		allowedAnswers: yesNo,
	},
	"PSMA-negative number of lesions": {
		question: "how many PSMA-negative lesions are present?",
	},
	"PSMA-negative localization notes": {
		question: "what are the localization notes for the PSMA-negative lesion(s)?",
	},

	// Indeterminate findings
	"Indeterminate findings": {
		question: "what are the indeterminate findings or additional notes?",
	},

	// Impression
	"miTNM classification": {
		question: "what is the miTNM classification?",
	},
	"PROMISE score": {
		question: "what is the PROMISE score?",
	},
	"PRIMARY score": {
		question: "what is the PRIMARY score?",
	},
	"RECIP score": {
		question: "what is the RECIP score?",
	},

	// Other scoring systems
	"Other scoring systems notes": {
		question: "what are the notes for other scoring systems?",
	},
}

// promptTableDE carries the German question bodies. Keys, types and options
// are language-invariant; only the question text is localized. Prompt keys
// missing here fall back to English.
var promptTableDE = map[string]string{
	"Indication for the scan":                      "Was ist die Indikation für die PSMA-PET/CT-Untersuchung?",
	"Date of initiation of last/recurrent therapy": "Was ist das Datum des Beginns der letzten/erneuten Therapie (TT/MM/JJJJ)?",
	"Radical prostatectomy":                        "Wurde beim Patienten eine radikale Prostatektomie durchgeführt?",
	"External beam radiation to prostate":          "Hat der Patient eine externe Strahlentherapie der Prostata erhalten?",
	"Post-prostatectomy external beam radiation":   "Hat der Patient nach der Prostatektomie eine externe Strahlentherapie erhalten?",
	"Brachytherapy to prostate":                    "Wurde beim Patienten eine Brachytherapie der Prostata durchgeführt?",
	"Androgen deprivation therapy":                 "Hat der Patient eine Androgendeprivationstherapie erhalten?",
	"ARPI (i.e., abiraterone)":                     "Hat der Patient einen ARPI (z. B. Abirateron) erhalten?",
	"Chemotherapy":                                 "Hat der Patient eine Chemotherapie erhalten?",
	"Other therapies":                              "Welche weiteren Therapien hat der Patient erhalten?",
	"Most recent PSA levels (ng/mL)":               "Was ist der aktuellste PSA-Wert (ng/mL)?",
	"Date of PSA measurement":                      "Was ist das Datum der letzten PSA-Messung (TT/MM/JJJJ)?",
	"Radiopharmaceutical used":                     "Welches Radiopharmakon wurde für die PSMA-PET/CT verwendet?",
	"Dosage and Injection Time":                    "Wie lauteten Dosierung und Injektionszeitpunkt der PSMA-PET/CT?",
	"Accompanying CT":                              "Welche Art von CT begleitete die PSMA-PET-Untersuchung?",
	"Liver SUV mean":                               "Was ist der mittlere SUV der Leber?",
	"Liver lesion present":                         "Liegt eine Leberläsion vor?",
	"Blood pool SUV mean":                          "Was ist der mittlere SUV des Blutpools?",
	"Blood pool lesion present":                    "Liegt eine Blutpool-Läsion vor?",
	"Other SUV mean":                               "Was ist der sonstige mittlere SUV (falls verfügbar)?",
	"Other lesion present":                         "Liegen weitere Läsionen vor?",
	"Prostate Gland lesions":                       "Liegen Läsionen in der Prostata vor?",
	"Prostate Gland number of lesions":             "Wie viele Läsionen liegen in der Prostata vor?",
	"Prostate Gland SUVmax":                        "Was ist der SUVmax der Prostataläsion(en)?",
	"Prostate Gland localization":                  "Wie ist die Lokalisation der Prostataläsion(en)?",
	"Prostate Bed lesions":                         "Liegen Läsionen in der Prostataloge (nach Prostatektomie) vor?",
	"Prostate Bed number of lesions":               "Wie viele Läsionen liegen in der Prostataloge vor?",
	"Prostate Bed SUVmax":                          "Was ist der SUVmax der Läsion(en) in der Prostataloge?",
	"Prostate Bed localization":                    "Wie ist die Lokalisation der Läsion(en) in der Prostataloge?",
	"Seminal Vesicles lesions":                     "Liegen Läsionen in den Samenblasen vor?",
	"Seminal Vesicles number of lesions":           "Wie viele Läsionen liegen in den Samenblasen vor?",
	"Seminal Vesicles SUVmax":                      "Was ist der SUVmax der Samenblasenläsion(en)?",
	"Seminal Vesicles localization":                "Wie ist die Lokalisation der Samenblasenläsion(en)?",
	"Pelvic LN lesions":                            "Liegen pelvine Lymphknotenläsionen vor?",
	"External Iliac lesion":                        "Liegen Läsionen der externen Iliakalgruppe vor?",
	"External Iliac size and SUVmax":               "Wie sind Größe und SUVmax der Läsion(en) der externen Iliakalgruppe?",
	"External Iliac notes":                         "Welche Anmerkungen gibt es zu den Läsionen der externen Iliakalgruppe?",
	"Internal Iliac lesion":                        "Liegen Läsionen der internen Iliakalgruppe vor?",
	"Internal Iliac size and SUVmax":               "Wie sind Größe und SUVmax der Läsion(en) der internen Iliakalgruppe?",
	"Internal Iliac notes":                         "Welche Anmerkungen gibt es zu den Läsionen der internen Iliakalgruppe?",
	"Obturator lesion":                             "Liegen Läsionen der Obturatoriusgruppe vor?",
	"Obturator size and SUVmax":                    "Wie sind Größe und SUVmax der Läsion(en) der Obturatoriusgruppe?",
	"Obturator notes":                              "Welche Anmerkungen gibt es zu den Läsionen der Obturatoriusgruppe?",
	"Common iliac lesion":                          "Liegen Läsionen der gemeinsamen Iliakalgruppe vor?",
	"Common iliac size and SUVmax":                 "Wie sind Größe und SUVmax der Läsion(en) der gemeinsamen Iliakalgruppe?",
	"Common iliac notes":                           "Welche Anmerkungen gibt es zu den Läsionen der gemeinsamen Iliakalgruppe?",
	"Perirectal lesion":                            "Liegen perirektale Läsionen vor?",
	"Perirectal size and SUVmax":                   "Wie sind Größe und SUVmax der perirektalen Läsion(en)?",
	"Perirectal notes":                             "Welche Anmerkungen gibt es zu den perirektalen Läsionen?",
	"Presacral lesion":                             "Liegen präsakrale Läsionen vor?",
	"Presacral size and SUVmax":                    "Wie sind Größe und SUVmax der präsakralen Läsion(en)?",
	"Presacral notes":                              "Welche Anmerkungen gibt es zu den präsakralen Läsionen?",
	"Other Pelvic LN lesion":                       "Liegen weitere pelvine Lymphknotenläsionen vor?",
	"Other Pelvic LN size and SUVmax":              "Wie sind Größe und SUVmax der weiteren pelvinen Lymphknotenläsion(en)?",
	"Other Pelvic LN notes":                        "Welche Anmerkungen gibt es zu den weiteren pelvinen Lymphknotenläsionen?",
	"Extra-pelvic LN lesions":                      "Liegen extrapelvine Lymphknotenläsionen vor?",
	"Abdominal lesion":                             "Liegen abdominelle Lymphknotenläsionen vor?",
	"Abdominal size and SUVmax":                    "Wie sind Größe und SUVmax der abdominellen Lymphknotenläsion(en)?",
	"Abdominal notes":                              "Welche Anmerkungen gibt es zu den abdominellen Lymphknotenläsionen?",
	"Thoracic lesion":                              "Liegen thorakale Lymphknotenläsionen vor?",
	"Thoracic size and SUVmax":                     "Wie sind Größe und SUVmax der thorakalen Lymphknotenläsion(en)?",
	"Thoracic notes":                               "Welche Anmerkungen gibt es zu den thorakalen Lymphknotenläsionen?",
	"Supraclavicular lesion":                       "Liegen supraklavikuläre Lymphknotenläsionen vor?",
	"Supraclavicular size and SUVmax":              "Wie sind Größe und SUVmax der supraklavikulären Lymphknotenläsion(en)?",
	"Supraclavicular notes":                        "Welche Anmerkungen gibt es zu den supraklavikulären Lymphknotenläsionen?",
	"Other Extra-pelvic LN lesion":                 "Liegen weitere extrapelvine Lymphknotenläsionen vor?",
	"Other Extra-pelvic LN size and SUVmax":        "Wie sind Größe und SUVmax der weiteren extrapelvinen Lymphknotenläsion(en)?",
	"Other Extra-pelvic LN notes":                  "Welche Anmerkungen gibt es zu den weiteren extrapelvinen Lymphknotenläsionen?",
	"Skeletal lesions":                             "Liegen ossäre Läsionen vor?",
	"Skeletal number of lesions":                   "Wie viele ossäre Läsionen liegen vor?",
	"Bone marrow involvement":                      "Liegt eine Knochenmarkbeteiligung vor?",
	"Skeletal localization notes":                  "Welche Anmerkungen gibt es zur Lokalisation der ossären Läsion(en)?",
	"Visceral lesions":                             "Liegen viszerale Metastasen vor?",
	"Visceral localization":                        "Wie ist die Lokalisation der viszeralen Metastasen?",
	"Visceral size and SUVmax":                     "Wie sind Größe und SUVmax der viszeralen Metastasen?",
	"Visceral notes":                               "Welche Anmerkungen gibt es zu den viszeralen Metastasen?",
	"PSMA-negative lesions":                        "Sind im CT PSMA-negative Läsionen beschrieben?",
	"PSMA-negative number of lesions":              "Wie viele PSMA-negative Läsionen liegen vor?",
	"PSMA-negative localization notes":             "Welche Anmerkungen gibt es zur Lokalisation der PSMA-negativen Läsion(en)?",
	"Indeterminate findings":                       "Welche unklaren Befunde oder zusätzlichen Anmerkungen gibt es?",
	"miTNM classification":                         "Wie lautet die miTNM-Klassifikation?",
	"PROMISE score":                                "Wie lautet der PROMISE-Score?",
	"PRIMARY score":                                "Wie lautet der PRIMARY-Score?",
	"RECIP score":                                  "Wie lautet der RECIP-Score?",
	"Other scoring systems notes":                  "Welche Anmerkungen gibt es zu weiteren Scoring-Systemen?",
}
