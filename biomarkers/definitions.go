/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

func ptr[T any](v T) *T {
	return &v
}

// units builds units whose label is the code itself.
func units(codes ...string) []Unit {
	out := make([]Unit, len(codes))
	for i, code := range codes {
		out[i] = Unit{Code: code, Label: code}
	}

	return out
}

func bounded(low, high float64, unit string) *ReferenceRange {
	return &ReferenceRange{Low: ptr(low), High: ptr(high), Unit: unit}
}

// builtinDefinitions returns a fresh copy of the canonical catalog table.
// The first block is the everyday vitals and labs offered first in search;
// the rest are lab panels grouped by category.
func builtinDefinitions() []Definition {
	return []Definition{
		{
			Code:        "weight",
			Name:        "Weight",
			Units:       units("kg", "lb", "g"),
			DefaultUnit: "kg",
			Range:       bounded(40, 200, "kg"),
			Aliases:     []string{"body weight", "mass"},
			Category:    CategoryBody,
		},
		{
			Code:        "height",
			Name:        "Height",
			Units:       units("cm", "in"),
			DefaultUnit: "cm",
			Range:       bounded(120, 220, "cm"),
			Aliases:     []string{"stature"},
			Category:    CategoryBody,
		},
		{
			Code:        "hr_rest",
			Name:        "Resting Heart Rate",
			Units:       units("bpm"),
			DefaultUnit: "bpm",
			Range: &ReferenceRange{
				Low:  ptr(40.0),
				High: ptr(100.0),
				Unit: "bpm",
				Note: "clinical ranges often start at 60",
			},
			Aliases:  []string{"RHR"},
			Category: CategoryVitalSigns,
		},
		{
			Code:        "spo2",
			Name:        "Blood Oxygen Saturation",
			Units:       units("%"),
			DefaultUnit: "%",
			Range:       bounded(95, 100, "%"),
			Aliases:     []string{"Pulse ox", "SpO2", "Blood Oxygen (SpO2)"},
			Category:    CategoryVitalSigns,
		},
		{
			Code: "temp",
			Name: "Body Temperature",
			Units: []Unit{
				{Code: "C", Label: "°C"},
				{Code: "F", Label: "°F"},
			},
			DefaultUnit: "C",
			Range:       bounded(36.1, 37.2, "C"),
			Aliases:     []string{"Temperature", "Body temp"},
			Category:    CategoryVitalSigns,
		},
		{
			Code:        "bp_systolic",
			Name:        "Blood Pressure Systolic",
			Units:       units("mmHg"),
			DefaultUnit: "mmHg",
			Range:       bounded(90, 120, "mmHg"),
			Aliases:     []string{"SBP", "Blood Pressure (Systolic)"},
			Category:    CategoryVitalSigns,
		},
		{
			Code:        "bp_diastolic",
			Name:        "Blood Pressure Diastolic",
			Units:       units("mmHg"),
			DefaultUnit: "mmHg",
			Range:       bounded(60, 80, "mmHg"),
			Aliases:     []string{"DBP", "Blood Pressure (Diastolic)"},
			Category:    CategoryVitalSigns,
		},
		{
			Code:        "glucose",
			Name:        "Blood Glucose",
			Units:       units("mg/dL", "mmol/L"),
			DefaultUnit: "mg/dL",
			Range: &ReferenceRange{
				Low:  ptr(70.0),
				High: ptr(99.0),
				Unit: "mg/dL",
				Note: "fasting",
			},
			Aliases:  []string{"BG", "glucose fasting", "Fasting Blood Glucose"},
			Category: CategoryMetabolic,
		},
		{
			Code:        "hba1c",
			Name:        "Hemoglobin A1c",
			Units:       units("%"),
			DefaultUnit: "%",
			Range:       bounded(4.0, 5.6, "%"),
			Aliases:     []string{"A1c", "HbA1c"},
			Category:    CategoryMetabolic,
		},
		{
			Code:        "bmi",
			Name:        "Body Mass Index",
			Units:       units("kg/m^2"),
			DefaultUnit: "kg/m^2",
			Range:       bounded(18.5, 24.9, "kg/m^2"),
			Category:    CategoryBody,
		},
		{
			Code:     "hr",
			Name:     "Heart Rate",
			Units:    units("bpm"),
			Range:    bounded(60, 100, "bpm"),
			Aliases:  []string{"pulse", "HR"},
			Category: CategoryVitalSigns,
		},
		{
			Code:     "resp_rate",
			Name:     "Respiratory Rate",
			Units:    units("breaths/min"),
			Range:    bounded(12, 20, "breaths/min"),
			Aliases:  []string{"RR", "breathing rate"},
			Category: CategoryVitalSigns,
		},
		{
			Code:     "wbc",
			Name:     "White Blood Cell Count (WBC)",
			Units:    units("K/uL", "cells/uL"),
			Range:    bounded(4.5, 11, "K/uL"),
			Aliases:  []string{"WBC", "leukocytes"},
			Category: CategoryHematology,
		},
		{
			Code:     "rbc",
			Name:     "Red Blood Cell Count (RBC)",
			Units:    units("M/uL"),
			Range:    bounded(4.5, 5.9, "M/uL"),
			Aliases:  []string{"RBC", "erythrocytes"},
			Category: CategoryHematology,
		},
		{
			Code:     "hemoglobin",
			Name:     "Hemoglobin",
			Units:    units("g/dL"),
			Range:    bounded(13.5, 17.5, "g/dL"),
			Aliases:  []string{"Hgb", "Hb"},
			Category: CategoryHematology,
		},
		{
			Code:     "hematocrit",
			Name:     "Hematocrit",
			Units:    units("%"),
			Range:    bounded(38.3, 48.6, "%"),
			Aliases:  []string{"Hct", "PCV"},
			Category: CategoryHematology,
		},
		{
			Code:     "platelets",
			Name:     "Platelet Count",
			Units:    units("K/uL"),
			Range:    bounded(150, 400, "K/uL"),
			Aliases:  []string{"PLT", "thrombocytes"},
			Category: CategoryHematology,
		},
		{
			Code:     "mcv",
			Name:     "Mean Corpuscular Volume (MCV)",
			Units:    units("fL"),
			Range:    bounded(80, 100, "fL"),
			Aliases:  []string{"MCV"},
			Category: CategoryHematology,
		},
		{
			Code:     "mch",
			Name:     "Mean Corpuscular Hemoglobin (MCH)",
			Units:    units("pg"),
			Range:    bounded(27, 33, "pg"),
			Aliases:  []string{"MCH"},
			Category: CategoryHematology,
		},
		{
			Code:     "mchc",
			Name:     "Mean Corpuscular Hemoglobin Concentration (MCHC)",
			Units:    units("g/dL"),
			Range:    bounded(32, 36, "g/dL"),
			Aliases:  []string{"MCHC"},
			Category: CategoryHematology,
		},
		{
			Code:     "rdw",
			Name:     "Red Cell Distribution Width (RDW)",
			Units:    units("%"),
			Range:    bounded(11.5, 14.5, "%"),
			Aliases:  []string{"RDW"},
			Category: CategoryHematology,
		},
		{
			Code:     "anc",
			Name:     "Absolute Neutrophil Count",
			Units:    units("K/uL"),
			Range:    bounded(1.5, 8, "K/uL"),
			Aliases:  []string{"ANC", "neutrophils"},
			Category: CategoryHematology,
		},
		{
			Code:     "alc",
			Name:     "Absolute Lymphocyte Count",
			Units:    units("K/uL"),
			Range:    bounded(1, 4, "K/uL"),
			Aliases:  []string{"ALC", "lymphocytes"},
			Category: CategoryHematology,
		},
		{
			Code:     "amc",
			Name:     "Absolute Monocyte Count",
			Units:    units("K/uL"),
			Range:    bounded(0.2, 0.8, "K/uL"),
			Aliases:  []string{"monocytes"},
			Category: CategoryHematology,
		},
		{
			Code:     "aec",
			Name:     "Absolute Eosinophil Count",
			Units:    units("K/uL"),
			Range:    bounded(0, 0.5, "K/uL"),
			Aliases:  []string{"AEC", "eosinophils"},
			Category: CategoryHematology,
		},
		{
			Code:     "abc",
			Name:     "Absolute Basophil Count",
			Units:    units("K/uL"),
			Range:    bounded(0, 0.2, "K/uL"),
			Aliases:  []string{"basophils"},
			Category: CategoryHematology,
		},
		{
			Code:     "sodium",
			Name:     "Sodium",
			Units:    units("mEq/L", "mmol/L"),
			Range:    bounded(136, 145, "mEq/L"),
			Aliases:  []string{"Na"},
			Category: CategoryElectrolytes,
		},
		{
			Code:     "potassium",
			Name:     "Potassium",
			Units:    units("mEq/L", "mmol/L"),
			Range:    bounded(3.5, 5, "mEq/L"),
			Aliases:  []string{"K"},
			Category: CategoryElectrolytes,
		},
		{
			Code:     "chloride",
			Name:     "Chloride",
			Units:    units("mEq/L", "mmol/L"),
			Range:    bounded(96, 106, "mEq/L"),
			Aliases:  []string{"Cl"},
			Category: CategoryElectrolytes,
		},
		{
			Code:     "co2",
			Name:     "Carbon Dioxide (CO2)",
			Units:    units("mEq/L", "mmol/L"),
			Range:    bounded(23, 29, "mEq/L"),
			Aliases:  []string{"bicarbonate", "HCO3"},
			Category: CategoryElectrolytes,
		},
		{
			Code:     "bun",
			Name:     "Blood Urea Nitrogen (BUN)",
			Units:    units("mg/dL"),
			Range:    bounded(7, 20, "mg/dL"),
			Aliases:  []string{"BUN", "urea"},
			Category: CategoryKidney,
		},
		{
			Code:     "creatinine",
			Name:     "Creatinine",
			Units:    units("mg/dL"),
			Range:    bounded(0.7, 1.3, "mg/dL"),
			Aliases:  []string{"Cr", "serum creatinine"},
			Category: CategoryKidney,
		},
		{
			Code:     "calcium",
			Name:     "Calcium",
			Units:    units("mg/dL", "mmol/L"),
			Range:    bounded(8.5, 10.2, "mg/dL"),
			Aliases:  []string{"Ca"},
			Category: CategoryElectrolytes,
		},
		{
			Code:     "albumin",
			Name:     "Albumin",
			Units:    units("g/dL"),
			Range:    bounded(3.5, 5.5, "g/dL"),
			Aliases:  []string{"Alb"},
			Category: CategoryProtein,
		},
		{
			Code:     "total_protein",
			Name:     "Total Protein",
			Units:    units("g/dL"),
			Range:    bounded(6, 8.3, "g/dL"),
			Aliases:  []string{"TP"},
			Category: CategoryProtein,
		},
		{
			Code:     "alp",
			Name:     "Alkaline Phosphatase (ALP)",
			Units:    units("U/L"),
			Range:    bounded(44, 147, "U/L"),
			Aliases:  []string{"ALP", "alk phos"},
			Category: CategoryLiver,
		},
		{
			Code:     "alt",
			Name:     "Alanine Aminotransferase (ALT)",
			Units:    units("U/L"),
			Range:    bounded(7, 56, "U/L"),
			Aliases:  []string{"ALT", "SGPT"},
			Category: CategoryLiver,
		},
		{
			Code:     "ast",
			Name:     "Aspartate Aminotransferase (AST)",
			Units:    units("U/L"),
			Range:    bounded(10, 40, "U/L"),
			Aliases:  []string{"AST", "SGOT"},
			Category: CategoryLiver,
		},
		{
			Code:     "bilirubin_total",
			Name:     "Bilirubin (Total)",
			Units:    units("mg/dL"),
			Range:    bounded(0.1, 1.2, "mg/dL"),
			Aliases:  []string{"TBIL", "total bilirubin"},
			Category: CategoryLiver,
		},
		{
			Code:     "bilirubin_direct",
			Name:     "Bilirubin (Direct)",
			Units:    units("mg/dL"),
			Range:    bounded(0, 0.3, "mg/dL"),
			Aliases:  []string{"DBIL", "conjugated bilirubin"},
			Category: CategoryLiver,
		},
		{
			Code:     "cholesterol_total",
			Name:     "Total Cholesterol",
			Units:    units("mg/dL", "mmol/L"),
			Range:    bounded(0, 200, "mg/dL"),
			Aliases:  []string{"TC", "cholesterol"},
			Category: CategoryLipids,
		},
		{
			Code:     "ldl",
			Name:     "LDL Cholesterol",
			Units:    units("mg/dL", "mmol/L"),
			Range:    bounded(0, 100, "mg/dL"),
			Aliases:  []string{"LDL", "LDL-C"},
			Category: CategoryLipids,
		},
		{
			Code:     "hdl",
			Name:     "HDL Cholesterol",
			Units:    units("mg/dL", "mmol/L"),
			Range:    bounded(40, 200, "mg/dL"),
			Aliases:  []string{"HDL", "HDL-C"},
			Category: CategoryLipids,
		},
		{
			Code:     "triglycerides",
			Name:     "Triglycerides",
			Units:    units("mg/dL", "mmol/L"),
			Range:    bounded(0, 150, "mg/dL"),
			Aliases:  []string{"TG", "trigs"},
			Category: CategoryLipids,
		},
		{
			Code:     "vldl",
			Name:     "VLDL Cholesterol",
			Units:    units("mg/dL"),
			Range:    bounded(2, 30, "mg/dL"),
			Aliases:  []string{"VLDL"},
			Category: CategoryLipids,
		},
		{
			Code:     "tsh",
			Name:     "TSH (Thyroid Stimulating Hormone)",
			Units:    units("mIU/L"),
			Range:    bounded(0.4, 4, "mIU/L"),
			Aliases:  []string{"TSH", "thyrotropin"},
			Category: CategoryThyroid,
		},
		{
			Code:     "free_t4",
			Name:     "Free T4 (Thyroxine)",
			Units:    units("ng/dL"),
			Range:    bounded(0.8, 1.8, "ng/dL"),
			Aliases:  []string{"FT4"},
			Category: CategoryThyroid,
		},
		{
			Code:     "free_t3",
			Name:     "Free T3 (Triiodothyronine)",
			Units:    units("pg/mL"),
			Range:    bounded(2.3, 4.2, "pg/mL"),
			Aliases:  []string{"FT3"},
			Category: CategoryThyroid,
		},
		{
			Code:     "total_t4",
			Name:     "Total T4",
			Units:    units("μg/dL"),
			Range:    bounded(5, 12, "μg/dL"),
			Aliases:  []string{"T4"},
			Category: CategoryThyroid,
		},
		{
			Code:     "total_t3",
			Name:     "Total T3",
			Units:    units("ng/dL"),
			Range:    bounded(80, 200, "ng/dL"),
			Aliases:  []string{"T3"},
			Category: CategoryThyroid,
		},
		{
			Code:     "vitamin_d",
			Name:     "Vitamin D (25-OH)",
			Units:    units("ng/mL", "nmol/L"),
			Range:    bounded(30, 100, "ng/mL"),
			Aliases:  []string{"25-hydroxyvitamin D", "calcidiol"},
			Category: CategoryVitamins,
		},
		{
			Code:     "vitamin_b12",
			Name:     "Vitamin B12",
			Units:    units("pg/mL"),
			Range:    bounded(200, 900, "pg/mL"),
			Aliases:  []string{"B12", "cobalamin"},
			Category: CategoryVitamins,
		},
		{
			Code:     "folate",
			Name:     "Folate",
			Units:    units("ng/mL"),
			Range:    bounded(2.7, 17, "ng/mL"),
			Aliases:  []string{"folic acid", "B9"},
			Category: CategoryVitamins,
		},
		{
			Code:     "iron",
			Name:     "Iron",
			Units:    units("μg/dL"),
			Range:    bounded(60, 170, "μg/dL"),
			Aliases:  []string{"Fe", "serum iron"},
			Category: CategoryMinerals,
		},
		{
			Code:     "ferritin",
			Name:     "Ferritin",
			Units:    units("ng/mL"),
			Range:    bounded(20, 250, "ng/mL"),
			Category: CategoryMinerals,
		},
		{
			Code:     "magnesium",
			Name:     "Magnesium",
			Units:    units("mg/dL"),
			Range:    bounded(1.7, 2.2, "mg/dL"),
			Aliases:  []string{"Mg"},
			Category: CategoryMinerals,
		},
		{
			Code:     "phosphorus",
			Name:     "Phosphorus",
			Units:    units("mg/dL"),
			Range:    bounded(2.5, 4.5, "mg/dL"),
			Aliases:  []string{"phosphate", "PO4"},
			Category: CategoryMinerals,
		},
		{
			Code:     "zinc",
			Name:     "Zinc",
			Units:    units("μg/dL"),
			Range:    bounded(60, 130, "μg/dL"),
			Aliases:  []string{"Zn"},
			Category: CategoryMinerals,
		},
		{
			Code:     "testosterone_total",
			Name:     "Testosterone (Total)",
			Units:    units("ng/dL"),
			Range:    bounded(300, 1000, "ng/dL"),
			Aliases:  []string{"total testosterone"},
			Category: CategoryHormones,
		},
		{
			Code:     "testosterone_free",
			Name:     "Testosterone (Free)",
			Units:    units("pg/mL"),
			Range:    bounded(5, 25, "pg/mL"),
			Aliases:  []string{"free testosterone"},
			Category: CategoryHormones,
		},
		{
			Code:     "estradiol",
			Name:     "Estradiol",
			Units:    units("pg/mL"),
			Range:    bounded(10, 50, "pg/mL"),
			Aliases:  []string{"E2"},
			Category: CategoryHormones,
		},
		{
			Code:     "progesterone",
			Name:     "Progesterone",
			Units:    units("ng/mL"),
			Range:    bounded(0, 20, "ng/mL"),
			Aliases:  []string{"P4"},
			Category: CategoryHormones,
		},
		{
			Code:     "cortisol",
			Name:     "Cortisol",
			Units:    units("μg/dL"),
			Range:    bounded(6, 23, "μg/dL"),
			Category: CategoryHormones,
		},
		{
			Code:     "dhea_s",
			Name:     "DHEA-S",
			Units:    units("μg/dL"),
			Range:    bounded(35, 430, "μg/dL"),
			Aliases:  []string{"DHEA sulfate"},
			Category: CategoryHormones,
		},
		{
			Code:     "insulin",
			Name:     "Insulin",
			Units:    units("μIU/mL"),
			Range:    bounded(2.6, 24.9, "μIU/mL"),
			Aliases:  []string{"fasting insulin"},
			Category: CategoryHormones,
		},
		{
			Code:     "c_peptide",
			Name:     "C-Peptide",
			Units:    units("ng/mL"),
			Range:    bounded(0.8, 3.1, "ng/mL"),
			Category: CategoryHormones,
		},
		{
			Code:     "igf1",
			Name:     "IGF-1 (Insulin-like Growth Factor)",
			Units:    units("ng/mL"),
			Range:    bounded(115, 307, "ng/mL"),
			Aliases:  []string{"IGF-1", "somatomedin C"},
			Category: CategoryHormones,
		},
		{
			Code:     "growth_hormone",
			Name:     "Growth Hormone",
			Units:    units("ng/mL"),
			Range:    bounded(0, 5, "ng/mL"),
			Aliases:  []string{"GH", "HGH"},
			Category: CategoryHormones,
		},
		{
			Code:     "prolactin",
			Name:     "Prolactin",
			Units:    units("ng/mL"),
			Range:    bounded(2, 18, "ng/mL"),
			Aliases:  []string{"PRL"},
			Category: CategoryHormones,
		},
		{
			Code:     "fsh",
			Name:     "FSH (Follicle Stimulating Hormone)",
			Units:    units("mIU/mL"),
			Range:    bounded(1.5, 12.4, "mIU/mL"),
			Aliases:  []string{"FSH"},
			Category: CategoryHormones,
		},
		{
			Code:     "lh",
			Name:     "LH (Luteinizing Hormone)",
			Units:    units("mIU/mL"),
			Range:    bounded(1.7, 8.6, "mIU/mL"),
			Aliases:  []string{"LH"},
			Category: CategoryHormones,
		},
		{
			Code:     "troponin_i",
			Name:     "Troponin I",
			Units:    units("ng/mL"),
			Range:    bounded(0, 0.04, "ng/mL"),
			Aliases:  []string{"cTnI"},
			Category: CategoryCardiac,
		},
		{
			Code:     "troponin_t",
			Name:     "Troponin T",
			Units:    units("ng/mL"),
			Range:    bounded(0, 0.01, "ng/mL"),
			Aliases:  []string{"cTnT"},
			Category: CategoryCardiac,
		},
		{
			Code:     "bnp",
			Name:     "BNP (B-type Natriuretic Peptide)",
			Units:    units("pg/mL"),
			Range:    bounded(0, 100, "pg/mL"),
			Aliases:  []string{"BNP"},
			Category: CategoryCardiac,
		},
		{
			Code:     "nt_probnp",
			Name:     "NT-proBNP",
			Units:    units("pg/mL"),
			Range:    bounded(0, 125, "pg/mL"),
			Category: CategoryCardiac,
		},
		{
			Code:     "ck",
			Name:     "CK (Creatine Kinase)",
			Units:    units("U/L"),
			Range:    bounded(38, 174, "U/L"),
			Aliases:  []string{"CPK", "creatine phosphokinase"},
			Category: CategoryCardiac,
		},
		{
			Code:     "ck_mb",
			Name:     "CK-MB",
			Units:    units("U/L"),
			Range:    bounded(0, 5, "U/L"),
			Category: CategoryCardiac,
		},
		{
			Code:     "homocysteine",
			Name:     "Homocysteine",
			Units:    units("μmol/L"),
			Range:    bounded(5, 15, "μmol/L"),
			Aliases:  []string{"Hcy"},
			Category: CategoryCardiac,
		},
		{
			Code:     "crp",
			Name:     "C-Reactive Protein (CRP)",
			Units:    units("mg/L"),
			Range:    bounded(0, 3, "mg/L"),
			Aliases:  []string{"CRP"},
			Category: CategoryInflammation,
		},
		{
			Code:     "hs_crp",
			Name:     "High-Sensitivity CRP (hs-CRP)",
			Units:    units("mg/L"),
			Range:    bounded(0, 3, "mg/L"),
			Aliases:  []string{"hsCRP"},
			Category: CategoryInflammation,
		},
		{
			Code:     "esr",
			Name:     "Erythrocyte Sedimentation Rate (ESR)",
			Units:    units("mm/hr"),
			Range:    bounded(0, 20, "mm/hr"),
			Aliases:  []string{"ESR", "sed rate"},
			Category: CategoryInflammation,
		},
		{
			Code:     "pt",
			Name:     "PT (Prothrombin Time)",
			Units:    units("seconds"),
			Range:    bounded(11, 13.5, "seconds"),
			Aliases:  []string{"prothrombin time"},
			Category: CategoryCoagulation,
		},
		{
			Code:     "inr",
			Name:     "INR",
			Units:    units("ratio"),
			Range:    bounded(0.8, 1.1, "ratio"),
			Aliases:  []string{"international normalized ratio"},
			Category: CategoryCoagulation,
		},
		{
			Code:     "ptt",
			Name:     "PTT (Partial Thromboplastin Time)",
			Units:    units("seconds"),
			Range:    bounded(25, 35, "seconds"),
			Aliases:  []string{"aPTT"},
			Category: CategoryCoagulation,
		},
		{
			Code:     "fibrinogen",
			Name:     "Fibrinogen",
			Units:    units("mg/dL"),
			Range:    bounded(200, 400, "mg/dL"),
			Category: CategoryCoagulation,
		},
		{
			Code:     "d_dimer",
			Name:     "D-Dimer",
			Units:    units("ng/mL"),
			Range:    bounded(0, 500, "ng/mL"),
			Category: CategoryCoagulation,
		},
		{
			Code:     "urine_ph",
			Name:     "Urine pH",
			Units:    units("pH"),
			Range:    bounded(4.5, 8, "pH"),
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_sg",
			Name:     "Urine Specific Gravity",
			Units:    units("SG"),
			Range:    bounded(1.005, 1.03, "SG"),
			Aliases:  []string{"USG"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_protein",
			Name:     "Urine Protein",
			Units:    units("mg/dL"),
			Range:    bounded(0, 14, "mg/dL"),
			Aliases:  []string{"proteinuria"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_glucose",
			Name:     "Urine Glucose",
			Units:    units("mg/dL"),
			Range:    bounded(0, 15, "mg/dL"),
			Aliases:  []string{"glucosuria"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_ketones",
			Name:     "Urine Ketones",
			Units:    units("mg/dL"),
			Range:    bounded(0, 0, "mg/dL"),
			Aliases:  []string{"ketonuria"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "uacr",
			Name:     "Microalbumin/Creatinine Ratio",
			Units:    units("mg/g"),
			Range:    bounded(0, 30, "mg/g"),
			Aliases:  []string{"UACR", "ACR"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "upcr",
			Name:     "Protein/Creatinine Ratio, Urine",
			Units:    units("mg/g"),
			Range:    bounded(0, 200, "mg/g"),
			Aliases:  []string{"UPCR"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "psa",
			Name:     "PSA (Prostate Specific Antigen)",
			Units:    units("ng/mL"),
			Range:    bounded(0, 4, "ng/mL"),
			Aliases:  []string{"PSA"},
			Category: CategoryTumorMarkers,
		},
		{
			Code:     "cea",
			Name:     "CEA (Carcinoembryonic Antigen)",
			Units:    units("ng/mL"),
			Range:    bounded(0, 3, "ng/mL"),
			Aliases:  []string{"CEA"},
			Category: CategoryTumorMarkers,
		},
		{
			Code:     "ca19_9",
			Name:     "CA 19-9",
			Units:    units("U/mL"),
			Range:    bounded(0, 37, "U/mL"),
			Aliases:  []string{"CA19-9"},
			Category: CategoryTumorMarkers,
		},
		{
			Code:     "ca125",
			Name:     "CA 125",
			Units:    units("U/mL"),
			Range:    bounded(0, 35, "U/mL"),
			Aliases:  []string{"CA-125"},
			Category: CategoryTumorMarkers,
		},
		{
			Code:     "afp",
			Name:     "AFP (Alpha-Fetoprotein)",
			Units:    units("ng/mL"),
			Range:    bounded(0, 10, "ng/mL"),
			Aliases:  []string{"AFP"},
			Category: CategoryTumorMarkers,
		},
		{
			Code:     "uric_acid",
			Name:     "Uric Acid",
			Units:    units("mg/dL"),
			Range:    bounded(3.5, 7.2, "mg/dL"),
			Aliases:  []string{"urate"},
			Category: CategoryMetabolic,
		},
		{
			Code:     "lactate",
			Name:     "Lactate",
			Units:    units("mmol/L"),
			Range:    bounded(0.5, 2.2, "mmol/L"),
			Aliases:  []string{"lactic acid"},
			Category: CategoryMetabolic,
		},
		{
			Code:     "ammonia",
			Name:     "Ammonia",
			Units:    units("μmol/L"),
			Range:    bounded(15, 45, "μmol/L"),
			Aliases:  []string{"NH3"},
			Category: CategoryMetabolic,
		},
		{
			Code:     "amylase",
			Name:     "Amylase",
			Units:    units("U/L"),
			Range:    bounded(30, 110, "U/L"),
			Category: CategoryPancreatic,
		},
		{
			Code:     "lipase",
			Name:     "Lipase",
			Units:    units("U/L"),
			Range:    bounded(0, 160, "U/L"),
			Category: CategoryPancreatic,
		},
		{
			Code:     "ggt",
			Name:     "GGT (Gamma-Glutamyl Transferase)",
			Units:    units("U/L"),
			Range:    bounded(0, 51, "U/L"),
			Aliases:  []string{"GGT", "gamma GT"},
			Category: CategoryLiver,
		},
		{
			Code:     "ldh",
			Name:     "LDH (Lactate Dehydrogenase)",
			Units:    units("U/L"),
			Range:    bounded(122, 222, "U/L"),
			Aliases:  []string{"LDH", "LD"},
			Category: CategoryGeneral,
		},
		{
			Code:     "chromogranin_a",
			Name:     "Chromogranin A",
			Units:    units("ng/mL"),
			Range:    bounded(0, 95, "ng/mL"),
			Aliases:  []string{"CgA"},
			Category: CategoryTumorMarkers,
		},
		{
			Code:     "b2m",
			Name:     "Beta-2 Microglobulin",
			Units:    units("mg/L"),
			Range:    bounded(0.7, 1.8, "mg/L"),
			Aliases:  []string{"B2M"},
			Category: CategoryKidney,
		},
		{
			Code:     "cystatin_c",
			Name:     "Cystatin C",
			Units:    units("mg/L"),
			Range:    bounded(0.53, 0.95, "mg/L"),
			Category: CategoryKidney,
		},
		{
			Code:     "egfr",
			Name:     "eGFR (Estimated GFR)",
			Units:    units("mL/min/1.73m²"),
			Range:    bounded(90, 120, "mL/min/1.73m²"),
			Aliases:  []string{"GFR"},
			Category: CategoryKidney,
		},
		{
			Code:     "reticulocytes",
			Name:     "Reticulocyte Count",
			Units:    units("%"),
			Range:    bounded(0.5, 2, "%"),
			Aliases:  []string{"retic"},
			Category: CategoryHematology,
		},
		{
			Code:     "ipf",
			Name:     "Immature Platelet Fraction",
			Units:    units("%"),
			Range:    bounded(1.1, 6.1, "%"),
			Aliases:  []string{"IPF"},
			Category: CategoryHematology,
		},
		{
			Code:     "osmolality_serum",
			Name:     "Osmolality, Serum",
			Units:    units("mOsm/kg"),
			Range:    bounded(275, 295, "mOsm/kg"),
			Aliases:  []string{"serum osmolality"},
			Category: CategoryElectrolytes,
		},
		{
			Code:     "osmolality_urine",
			Name:     "Osmolality, Urine",
			Units:    units("mOsm/kg"),
			Range:    bounded(300, 900, "mOsm/kg"),
			Aliases:  []string{"urine osmolality"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "anion_gap",
			Name:     "Anion Gap",
			Units:    units("mEq/L"),
			Range:    bounded(8, 16, "mEq/L"),
			Aliases:  []string{"AG"},
			Category: CategoryElectrolytes,
		},
		{
			Code:     "lead",
			Name:     "Lead",
			Units:    units("μg/dL"),
			Range:    bounded(0, 5, "μg/dL"),
			Aliases:  []string{"Pb"},
			Category: CategoryHeavyMetals,
		},
		{
			Code:     "mercury",
			Name:     "Mercury",
			Units:    units("μg/L"),
			Range:    bounded(0, 10, "μg/L"),
			Aliases:  []string{"Hg"},
			Category: CategoryHeavyMetals,
		},
		{
			Code:     "cadmium",
			Name:     "Cadmium",
			Units:    units("μg/L"),
			Range:    bounded(0, 5, "μg/L"),
			Aliases:  []string{"Cd"},
			Category: CategoryHeavyMetals,
		},
		{
			Code:     "arsenic",
			Name:     "Arsenic",
			Units:    units("μg/L"),
			Range:    bounded(0, 10, "μg/L"),
			Aliases:  []string{"As"},
			Category: CategoryHeavyMetals,
		},
		{
			Code:     "ana",
			Name:     "ANA (Antinuclear Antibody)",
			Units:    units("titer"),
			Range:    bounded(0, 0, "titer"),
			Aliases:  []string{"ANA", "antinuclear antibodies"},
			Category: CategoryAutoimmune,
		},
		{
			Code:     "anti_dsdna",
			Name:     "Anti-dsDNA",
			Units:    units("IU/mL"),
			Range:    bounded(0, 9, "IU/mL"),
			Aliases:  []string{"dsDNA"},
			Category: CategoryAutoimmune,
		},
		{
			Code:     "rf",
			Name:     "Rheumatoid Factor",
			Units:    units("IU/mL"),
			Range:    bounded(0, 14, "IU/mL"),
			Aliases:  []string{"RF"},
			Category: CategoryAutoimmune,
		},
		{
			Code:     "anti_ccp",
			Name:     "Anti-CCP",
			Units:    units("U/mL"),
			Range:    bounded(0, 20, "U/mL"),
			Aliases:  []string{"ACPA"},
			Category: CategoryAutoimmune,
		},
		{
			Code:     "urine_ca_cr",
			Name:     "Calcium/Creatinine Ratio, Urine",
			Units:    units("mg/mg"),
			Range:    bounded(0, 0.2, "mg/mg"),
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_ox_cr",
			Name:     "Oxalate/Creatinine Ratio, Urine",
			Units:    units("mg/g"),
			Range:    bounded(0, 40, "mg/g"),
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_cit_cr",
			Name:     "Citrate/Creatinine Ratio, Urine",
			Units:    units("mg/g"),
			Range:    bounded(250, 1200, "mg/g"),
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_ua_cr",
			Name:     "Uric Acid/Creatinine Ratio, Urine",
			Units:    units("mg/g"),
			Range:    bounded(0, 750, "mg/g"),
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_zn_cr",
			Name:     "Zn/Creat, urine",
			Units:    units("μg/g"),
			Range:    bounded(100, 600, "μg/g"),
			Aliases:  []string{"zinc/creatinine"},
			Category: CategoryUrinalysis,
		},
		{
			Code:     "urine_zr_cr",
			Name:     "Zr/Creat, urine",
			Units:    units("μg/g"),
			Range:    bounded(0, 5, "μg/g"),
			Aliases:  []string{"zirconium/creatinine"},
			Category: CategoryUrinalysis,
		},
	}
}
