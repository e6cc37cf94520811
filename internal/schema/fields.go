package schema

// rawField is one field table entry before type inference. A zero Type is
// derived from the prompt entry at registry build time.
type rawField struct {
	key       string
	typ       FieldType
	label     string
	options   []string
	def       Value
	section   string
	promptKey string
	dep       *Dependency
}

var yesNoUnknown = []string{"Yes", "No", UnknownAnswer}

func radioDefault() Value { return StringValue(UnknownAnswer) }

// fieldTable lists every report field in declaration order. Sections and
// dependencies follow the PSMA PET/CT structured reporting template:
// site detail fields are enabled only when the site-level lesion question
// is answered "Yes", and pelvic/extra-pelvic node subsites additionally
// hang off their regional gate (dependency depth 2).
var fieldTable = []rawField{
	// Clinical History & Procedure
	{
		key:       "indication_for_scan",
		label:     "Indication for the scan",
		options:   []string{"Primary staging", "CRPC/Recurrent restaging", "PSMA expression assessment for PSMA targeted therapy"},
		def:       ListValue(nil),
		section:   "Clinical History & Procedure",
		promptKey: "Indication for the scan",
	},
	{
		key:       "therapy_date",
		label:     "Date of initiation of last/recurrent therapy",
		section:   "Clinical History & Procedure",
		promptKey: "Date of initiation of last/recurrent therapy",
	},
	{
		key:       "radical_prostatectomy",
		label:     "Radical prostatectomy?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Clinical History & Procedure",
		promptKey: "Radical prostatectomy",
	},
	{
		key:       "external_beam_radiation",
		label:     "External beam radiation to prostate?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Clinical History & Procedure",
		promptKey: "External beam radiation to prostate",
	},
	{
		key:       "post_prostatectomy_radiation",
		label:     "Post-prostatectomy external beam radiation?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Clinical History & Procedure",
		promptKey: "Post-prostatectomy external beam radiation",
	},
	{
		key:       "brachytherapy",
		label:     "Brachytherapy to prostate?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Clinical History & Procedure",
		promptKey: "Brachytherapy to prostate",
	},
	{
		key:       "androgen_deprivation",
		label:     "Androgen deprivation therapy?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Clinical History & Procedure",
		promptKey: "Androgen deprivation therapy",
	},
	{
		key:       "arpi",
		label:     "ARPI (i.e., abiraterone)?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Clinical History & Procedure",
		promptKey: "ARPI (i.e., abiraterone)",
	},
	{
		key:       "chemotherapy",
		label:     "Chemotherapy?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Clinical History & Procedure",
		promptKey: "Chemotherapy",
	},
	{
		key:       "other_therapies",
		typ:       TypeText,
		label:     "Other (therapies, etc.)",
		def:       StringValue(""),
		section:   "Clinical History & Procedure",
		promptKey: "Other therapies",
	},
	{
		// The question mentions PSA, but reports quote levels with units
		// and qualifiers, so the field stays free text.
		key:       "psa_level",
		typ:       TypeText,
		label:     "Most recent PSA levels (ng/mL)",
		def:       StringValue(""),
		section:   "Clinical History & Procedure",
		promptKey: "Most recent PSA levels (ng/mL)",
	},
	{
		key:       "psa_date",
		label:     "Date of measurement (dd/mm/yyyy)",
		section:   "Clinical History & Procedure",
		promptKey: "Date of PSA measurement",
	},

	// Comparison or Prior Imaging
	{
		key:       "radiopharmaceutical",
		typ:       TypeText,
		label:     "Radiopharmaceutical used",
		def:       StringValue(""),
		section:   "Comparison or Prior Imaging",
		promptKey: "Radiopharmaceutical used",
	},
	{
		key:       "dosage_injection_time",
		typ:       TypeText,
		label:     "Dosage and Injection Time",
		def:       StringValue(""),
		section:   "Comparison or Prior Imaging",
		promptKey: "Dosage and Injection Time",
	},

	// Accompanying CT
	{
		key:       "ct_type",
		typ:       TypeRadio,
		label:     "Accompanying CT",
		options:   []string{"Attenuation Correction Only", "Diagnostic with contrast", "Diagnostic without contrast"},
		def:       StringValue("Attenuation Correction Only"),
		section:   "Accompanying CT",
		promptKey: "Accompanying CT",
	},

	// Background Reference Uptake
	{
		key:       "liver_suv_mean",
		label:     "Liver SUV mean",
		def:       NumberValue(0),
		section:   "Background Reference Uptake",
		promptKey: "Liver SUV mean",
	},
	{
		key:       "liver_lesion",
		label:     "Liver lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Background Reference Uptake",
		promptKey: "Liver lesion present",
	},
	{
		key:       "blood_pool_suv_mean",
		label:     "Blood pool SUV mean",
		def:       NumberValue(0),
		section:   "Background Reference Uptake",
		promptKey: "Blood pool SUV mean",
	},
	{
		key:       "blood_pool_lesion",
		label:     "Blood pool lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Background Reference Uptake",
		promptKey: "Blood pool lesion present",
	},
	{
		key:       "other_suv_mean",
		label:     "Other SUV mean",
		def:       NumberValue(0),
		section:   "Background Reference Uptake",
		promptKey: "Other SUV mean",
	},
	{
		key:       "other_lesion",
		label:     "Other lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Background Reference Uptake",
		promptKey: "Other lesion present",
	},

	// Prostate Gland
	{
		key:       "prostate_lesions",
		label:     "Prostate Gland: Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Prostate Gland",
		promptKey: "Prostate Gland lesions",
	},
	{
		key:       "prostate_lesion_count",
		label:     "Number of lesions",
		def:       StringValue(""),
		section:   "Prostate Gland",
		promptKey: "Prostate Gland number of lesions",
		dep:       &Dependency{Field: "prostate_lesions", Value: "Yes"},
	},
	{
		key:       "prostate_suv_max",
		typ:       TypeText,
		label:     "SUVmax",
		def:       StringValue(""),
		section:   "Prostate Gland",
		promptKey: "Prostate Gland SUVmax",
		dep:       &Dependency{Field: "prostate_lesions", Value: "Yes"},
	},
	{
		key:       "prostate_localization",
		label:     "Localization",
		def:       ListValue(nil),
		section:   "Prostate Gland",
		promptKey: "Prostate Gland localization",
		dep:       &Dependency{Field: "prostate_lesions", Value: "Yes"},
	},

	// Prostate Bed (Post-Prostatectomy)
	{
		key:       "prostate_bed_lesions",
		label:     "Prostate Bed: Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Prostate Bed (Post-Prostatectomy)",
		promptKey: "Prostate Bed lesions",
	},
	{
		key:       "prostate_bed_lesion_count",
		label:     "Number of lesions",
		def:       StringValue(""),
		section:   "Prostate Bed (Post-Prostatectomy)",
		promptKey: "Prostate Bed number of lesions",
		dep:       &Dependency{Field: "prostate_bed_lesions", Value: "Yes"},
	},
	{
		key:       "prostate_bed_suv_max",
		typ:       TypeText,
		label:     "SUVmax",
		def:       StringValue(""),
		section:   "Prostate Bed (Post-Prostatectomy)",
		promptKey: "Prostate Bed SUVmax",
		dep:       &Dependency{Field: "prostate_bed_lesions", Value: "Yes"},
	},
	{
		key:       "prostate_bed_localization",
		label:     "Localization",
		def:       ListValue(nil),
		section:   "Prostate Bed (Post-Prostatectomy)",
		promptKey: "Prostate Bed localization",
		dep:       &Dependency{Field: "prostate_bed_lesions", Value: "Yes"},
	},

	// Seminal Vesicles
	{
		key:       "seminal_vesicles_lesions",
		label:     "Seminal Vesicles: Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Seminal Vesicles",
		promptKey: "Seminal Vesicles lesions",
	},
	{
		key:       "seminal_vesicles_lesion_count",
		label:     "Number of lesions",
		def:       StringValue(""),
		section:   "Seminal Vesicles",
		promptKey: "Seminal Vesicles number of lesions",
		dep:       &Dependency{Field: "seminal_vesicles_lesions", Value: "Yes"},
	},
	{
		key:       "seminal_vesicles_suv_max",
		typ:       TypeText,
		label:     "SUVmax",
		def:       StringValue(""),
		section:   "Seminal Vesicles",
		promptKey: "Seminal Vesicles SUVmax",
		dep:       &Dependency{Field: "seminal_vesicles_lesions", Value: "Yes"},
	},
	{
		key:       "seminal_vesicles_localization",
		label:     "Localization",
		def:       ListValue(nil),
		section:   "Seminal Vesicles",
		promptKey: "Seminal Vesicles localization",
		dep:       &Dependency{Field: "seminal_vesicles_lesions", Value: "Yes"},
	},

	// Pelvic LN(s)
	{
		key:       "pelvic_ln_lesions",
		label:     "Pelvic LN(s): Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "Pelvic LN lesions",
	},
	{
		key:       "external_iliac_lesion",
		label:     "External Iliac: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "External Iliac lesion",
		dep:       &Dependency{Field: "pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "external_iliac_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "External Iliac size and SUVmax",
		dep:       &Dependency{Field: "external_iliac_lesion", Value: "Yes"},
	},
	{
		key:       "external_iliac_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "External Iliac notes",
		dep:       &Dependency{Field: "external_iliac_lesion", Value: "Yes"},
	},
	{
		key:       "internal_iliac_lesion",
		label:     "Internal Iliac: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "Internal Iliac lesion",
		dep:       &Dependency{Field: "pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "internal_iliac_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Internal Iliac size and SUVmax",
		dep:       &Dependency{Field: "internal_iliac_lesion", Value: "Yes"},
	},
	{
		key:       "internal_iliac_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Internal Iliac notes",
		dep:       &Dependency{Field: "internal_iliac_lesion", Value: "Yes"},
	},
	{
		key:       "obturator_lesion",
		label:     "Obturator: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "Obturator lesion",
		dep:       &Dependency{Field: "pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "obturator_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Obturator size and SUVmax",
		dep:       &Dependency{Field: "obturator_lesion", Value: "Yes"},
	},
	{
		key:       "obturator_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Obturator notes",
		dep:       &Dependency{Field: "obturator_lesion", Value: "Yes"},
	},
	{
		key:       "common_iliac_lesion",
		label:     "Common iliac: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "Common iliac lesion",
		dep:       &Dependency{Field: "pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "common_iliac_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Common iliac size and SUVmax",
		dep:       &Dependency{Field: "common_iliac_lesion", Value: "Yes"},
	},
	{
		key:       "common_iliac_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Common iliac notes",
		dep:       &Dependency{Field: "common_iliac_lesion", Value: "Yes"},
	},
	{
		key:       "perirectal_lesion",
		label:     "Perirectal: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "Perirectal lesion",
		dep:       &Dependency{Field: "pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "perirectal_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Perirectal size and SUVmax",
		dep:       &Dependency{Field: "perirectal_lesion", Value: "Yes"},
	},
	{
		key:       "perirectal_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Perirectal notes",
		dep:       &Dependency{Field: "perirectal_lesion", Value: "Yes"},
	},
	{
		key:       "presacral_lesion",
		label:     "Presacral: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "Presacral lesion",
		dep:       &Dependency{Field: "pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "presacral_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Presacral size and SUVmax",
		dep:       &Dependency{Field: "presacral_lesion", Value: "Yes"},
	},
	{
		key:       "presacral_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Presacral notes",
		dep:       &Dependency{Field: "presacral_lesion", Value: "Yes"},
	},
	{
		key:       "other_pelvic_ln_lesion",
		label:     "Other Pelvic LN: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Pelvic LN(s)",
		promptKey: "Other Pelvic LN lesion",
		dep:       &Dependency{Field: "pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "other_pelvic_ln_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Other Pelvic LN size and SUVmax",
		dep:       &Dependency{Field: "other_pelvic_ln_lesion", Value: "Yes"},
	},
	{
		key:       "other_pelvic_ln_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Pelvic LN(s)",
		promptKey: "Other Pelvic LN notes",
		dep:       &Dependency{Field: "other_pelvic_ln_lesion", Value: "Yes"},
	},

	// Extra-pelvic LN(s)
	{
		key:       "extra_pelvic_ln_lesions",
		label:     "Extra-pelvic LN(s): Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Extra-pelvic LN lesions",
	},
	{
		key:       "abdominal_lesion",
		label:     "Abdominal: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Abdominal lesion",
		dep:       &Dependency{Field: "extra_pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "abdominal_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Abdominal size and SUVmax",
		dep:       &Dependency{Field: "abdominal_lesion", Value: "Yes"},
	},
	{
		key:       "abdominal_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Abdominal notes",
		dep:       &Dependency{Field: "abdominal_lesion", Value: "Yes"},
	},
	{
		key:       "thoracic_lesion",
		label:     "Thoracic: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Thoracic lesion",
		dep:       &Dependency{Field: "extra_pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "thoracic_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Thoracic size and SUVmax",
		dep:       &Dependency{Field: "thoracic_lesion", Value: "Yes"},
	},
	{
		key:       "thoracic_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Thoracic notes",
		dep:       &Dependency{Field: "thoracic_lesion", Value: "Yes"},
	},
	{
		key:       "supraclavicular_lesion",
		label:     "Supraclavicular: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Supraclavicular lesion",
		dep:       &Dependency{Field: "extra_pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "supraclavicular_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Supraclavicular size and SUVmax",
		dep:       &Dependency{Field: "supraclavicular_lesion", Value: "Yes"},
	},
	{
		key:       "supraclavicular_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Supraclavicular notes",
		dep:       &Dependency{Field: "supraclavicular_lesion", Value: "Yes"},
	},
	{
		key:       "other_extra_pelvic_ln_lesion",
		label:     "Other Extra-pelvic LN: Lesion present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Other Extra-pelvic LN lesion",
		dep:       &Dependency{Field: "extra_pelvic_ln_lesions", Value: "Yes"},
	},
	{
		key:       "other_extra_pelvic_ln_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Other Extra-pelvic LN size and SUVmax",
		dep:       &Dependency{Field: "other_extra_pelvic_ln_lesion", Value: "Yes"},
	},
	{
		key:       "other_extra_pelvic_ln_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Extra-pelvic LN(s)",
		promptKey: "Other Extra-pelvic LN notes",
		dep:       &Dependency{Field: "other_extra_pelvic_ln_lesion", Value: "Yes"},
	},

	// Skeletal/Bone Metastases
	{
		key:       "skeletal_lesions",
		label:     "Skeletal/Bone Metastases: Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Skeletal/Bone Metastases",
		promptKey: "Skeletal lesions",
	},
	{
		key:       "skeletal_lesion_count",
		label:     "Number of lesions",
		options:   []string{"0", "1", "2-4", "5+"},
		def:       StringValue("0"),
		section:   "Skeletal/Bone Metastases",
		promptKey: "Skeletal number of lesions",
		dep:       &Dependency{Field: "skeletal_lesions", Value: "Yes"},
	},
	{
		key:       "bone_marrow_involvement",
		label:     "Bone marrow involvement",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Skeletal/Bone Metastases",
		promptKey: "Bone marrow involvement",
		dep:       &Dependency{Field: "skeletal_lesions", Value: "Yes"},
	},
	{
		key:       "skeletal_localization_notes",
		label:     "Localization Notes",
		def:       StringValue(""),
		section:   "Skeletal/Bone Metastases",
		promptKey: "Skeletal localization notes",
		dep:       &Dependency{Field: "skeletal_lesions", Value: "Yes"},
	},

	// Visceral Metastases
	{
		key:       "visceral_lesions",
		label:     "Visceral Metastases: Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "Visceral Metastases",
		promptKey: "Visceral lesions",
	},
	{
		key:       "visceral_localization",
		label:     "Localization",
		def:       ListValue(nil),
		section:   "Visceral Metastases",
		promptKey: "Visceral localization",
		dep:       &Dependency{Field: "visceral_lesions", Value: "Yes"},
	},
	{
		key:       "visceral_size_suv",
		typ:       TypeText,
		label:     "Size & SUVmax",
		def:       StringValue(""),
		section:   "Visceral Metastases",
		promptKey: "Visceral size and SUVmax",
		dep:       &Dependency{Field: "visceral_lesions", Value: "Yes"},
	},
	{
		key:       "visceral_notes",
		label:     "Notes",
		def:       StringValue(""),
		section:   "Visceral Metastases",
		promptKey: "Visceral notes",
		dep:       &Dependency{Field: "visceral_lesions", Value: "Yes"},
	},

	// PSMA-negative lesions
	{
		key:       "psma_negative_lesions",
		label:     "PSMA-negative lesions noted on CT: Lesion(s) present?",
		options:   yesNoUnknown,
		def:       radioDefault(),
		section:   "PSMA-negative lesions",
		promptKey: "PSMA-negative lesions",
	},
	{
		key:       "psma_negative_lesion_count",
		label:     "Number of lesions",
		def:       StringValue(""),
		section:   "PSMA-negative lesions",
		promptKey: "PSMA-negative number of lesions",
		dep:       &Dependency{Field: "psma_negative_lesions", Value: "Yes"},
	},
	{
		key:       "psma_negative_localization_notes",
		label:     "Localization Notes",
		def:       StringValue(""),
		section:   "PSMA-negative lesions",
		promptKey: "PSMA-negative localization notes",
		dep:       &Dependency{Field: "psma_negative_lesions", Value: "Yes"},
	},

	// Indeterminate findings
	{
		key:       "indeterminate_findings",
		label:     "Indeterminate findings/ additional notes",
		def:       StringValue(""),
		section:   "Indeterminate findings",
		promptKey: "Indeterminate findings",
	},

	// Impression
	{
		key:       "mitnm",
		typ:       TypeText,
		label:     "miTNM",
		def:       StringValue(""),
		section:   "Impression",
		promptKey: "miTNM classification",
	},
	{
		key:       "promise",
		typ:       TypeText,
		label:     "PROMISE",
		def:       StringValue(""),
		section:   "Impression",
		promptKey: "PROMISE score",
	},
	{
		key:       "primary",
		typ:       TypeText,
		label:     "PRIMARY",
		def:       StringValue(""),
		section:   "Impression",
		promptKey: "PRIMARY score",
	},
	{
		key:       "recip",
		typ:       TypeText,
		label:     "RECIP",
		def:       StringValue(""),
		section:   "Impression",
		promptKey: "RECIP score",
	},

	// Other scoring systems
	{
		key:       "other_scoring_systems",
		label:     "Other scoring systems notes",
		def:       StringValue(""),
		section:   "Other scoring systems",
		promptKey: "Other scoring systems notes",
	},

	// Summary: derived by the reducer on every state change, never
	// extracted, so it carries no prompt key.
	{
		key:     "summary",
		label:   "Summary",
		def:     StringValue(""),
		section: "Summary",
	},
}
