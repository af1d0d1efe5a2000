package catalog

// All is the "no constraint" selection shared by every categorical filter.
// It is never a legal value on a posting.
const All = "All"

type Industry string

const (
	IndustryAll            Industry = All
	IndustryTechnology     Industry = "Technology"
	IndustryHealthcare     Industry = "Healthcare"
	IndustryFinance        Industry = "Finance"
	IndustryEducation      Industry = "Education"
	IndustryManufacturing  Industry = "Manufacturing"
	IndustryRetail         Industry = "Retail"
	IndustryMarketing      Industry = "Marketing"
	IndustryHospitality    Industry = "Hospitality"
	IndustryConstruction   Industry = "Construction"
	IndustryTransportation Industry = "Transportation"
)

var industries = []Industry{
	IndustryTechnology,
	IndustryHealthcare,
	IndustryFinance,
	IndustryEducation,
	IndustryManufacturing,
	IndustryRetail,
	IndustryMarketing,
	IndustryHospitality,
	IndustryConstruction,
	IndustryTransportation,
}

type DegreeLevel string

const (
	DegreeLevelAll        DegreeLevel = All
	DegreeLevelHighSchool DegreeLevel = "High School Diploma"
	DegreeLevelAssociate  DegreeLevel = "Associate's"
	DegreeLevelBachelor   DegreeLevel = "Bachelor's"
	DegreeLevelMaster     DegreeLevel = "Master's"
	DegreeLevelDoctoral   DegreeLevel = "Doctoral"
)

var degreeLevels = []DegreeLevel{
	DegreeLevelHighSchool,
	DegreeLevelAssociate,
	DegreeLevelBachelor,
	DegreeLevelMaster,
	DegreeLevelDoctoral,
}

type DegreeType string

const (
	DegreeTypeAll                    DegreeType = All
	DegreeTypeGeneral                DegreeType = "General"
	DegreeTypeGeneralStudies         DegreeType = "General Studies"
	DegreeTypeAppliedScience         DegreeType = "Applied Science"
	DegreeTypeArts                   DegreeType = "Arts"
	DegreeTypeComputerScience        DegreeType = "Computer Science"
	DegreeTypeBusinessAdministration DegreeType = "Business Administration"
	DegreeTypeNursing                DegreeType = "Nursing"
	DegreeTypeEducation              DegreeType = "Education"
	DegreeTypeEngineering            DegreeType = "Engineering"
	DegreeTypePublicHealth           DegreeType = "Public Health"
	DegreeTypeMedicine               DegreeType = "Medicine"
)

// degreeTypes is the fixed level -> offered types table. Order is display order.
var degreeTypes = map[DegreeLevel][]DegreeType{
	DegreeLevelHighSchool: {DegreeTypeGeneral},
	DegreeLevelAssociate:  {DegreeTypeGeneralStudies, DegreeTypeAppliedScience, DegreeTypeArts},
	DegreeLevelBachelor: {
		DegreeTypeComputerScience,
		DegreeTypeBusinessAdministration,
		DegreeTypeNursing,
		DegreeTypeEducation,
		DegreeTypeEngineering,
	},
	DegreeLevelMaster: {
		DegreeTypeComputerScience,
		DegreeTypeBusinessAdministration,
		DegreeTypeEducation,
		DegreeTypeEngineering,
		DegreeTypePublicHealth,
	},
	DegreeLevelDoctoral: {
		DegreeTypeComputerScience,
		DegreeTypeBusinessAdministration,
		DegreeTypeEducation,
		DegreeTypeEngineering,
		DegreeTypeMedicine,
	},
}

// Experience is a bucket label. Filters offer a fixed set of buckets, postings
// may carry others (e.g. "2-4 years") and then only match ExperienceAll.
type Experience string

const (
	ExperienceAll         Experience = All
	ExperienceEntryLevel  Experience = "Entry Level"
	ExperienceOneToThree  Experience = "1-3 years"
	ExperienceThreeToFive Experience = "3-5 years"
	ExperienceFivePlus    Experience = "5+ years"
)

var experienceOptions = []Experience{
	ExperienceEntryLevel,
	ExperienceOneToThree,
	ExperienceThreeToFive,
	ExperienceFivePlus,
}

// Credential is the short code carried by postings and compared by the matcher.
type Credential string

const (
	CredentialCDL             Credential = "CDL"
	CredentialRN              Credential = "RN"
	CredentialCPA             Credential = "CPA"
	CredentialPMP             Credential = "PMP"
	CredentialTeachingLicense Credential = "Teaching License"
	CredentialCISSP           Credential = "CISSP"
)

type CredentialOption struct {
	Code  Credential `json:"code"`
	Label string     `json:"label"`
}

var credentialOptions = []CredentialOption{
	{Code: CredentialCDL, Label: "Commercial Driver's License (CDL)"},
	{Code: CredentialRN, Label: "Registered Nurse (RN)"},
	{Code: CredentialCPA, Label: "Certified Public Accountant (CPA)"},
	{Code: CredentialPMP, Label: "Project Management Professional (PMP)"},
	{Code: CredentialTeachingLicense, Label: "Teaching License"},
	{Code: CredentialCISSP, Label: "Certified Information Systems Security Professional (CISSP)"},
}

// Distance slider bounds in miles. The control is cosmetic: nothing matches on it.
const (
	DistanceMin     = 0
	DistanceMax     = 100
	DistanceStep    = 10
	DistanceDefault = 50
)
