package domain

// GradingSystem identifies the grading protocol used for a green bean grading.
// Only SCA is implemented today; the column exists so other systems can be
// added without a schema change.
type GradingSystem string

const (
	GradingSystemSCA GradingSystem = "sca"
)

// DefectCategory distinguishes primary (full) from secondary defects.
// Secondary defects count at one fifth the weight of primary defects.
type DefectCategory int

const (
	DefectCategoryPrimary   DefectCategory = 1
	DefectCategorySecondary DefectCategory = 2
)

// DefectType enumerates the SCA green coffee defect vocabulary.
type DefectType string

// Primary (category 1) defects.
const (
	DefectFullBlack          DefectType = "full_black"
	DefectFullSour           DefectType = "full_sour"
	DefectDriedCherryPod     DefectType = "dried_cherry_pod"
	DefectFungusDamaged      DefectType = "fungus_damaged"
	DefectForeignMatter      DefectType = "foreign_matter"
	DefectSevereInsectDamage DefectType = "severe_insect_damage"
)

// Secondary (category 2) defects.
const (
	DefectPartialBlack       DefectType = "partial_black"
	DefectPartialSour        DefectType = "partial_sour"
	DefectParchment          DefectType = "parchment"
	DefectFloater            DefectType = "floater"
	DefectImmatureUnripe     DefectType = "immature_unripe"
	DefectWithered           DefectType = "withered"
	DefectShell              DefectType = "shell"
	DefectBrokenChippedCut   DefectType = "broken_chipped_cut"
	DefectHullHusk           DefectType = "hull_husk"
	DefectSlightInsectDamage DefectType = "slight_insect_damage"
)

// DefectCategories maps each defect type to its canonical category.
var DefectCategories = map[DefectType]DefectCategory{
	DefectFullBlack:          DefectCategoryPrimary,
	DefectFullSour:           DefectCategoryPrimary,
	DefectDriedCherryPod:     DefectCategoryPrimary,
	DefectFungusDamaged:      DefectCategoryPrimary,
	DefectForeignMatter:      DefectCategoryPrimary,
	DefectSevereInsectDamage: DefectCategoryPrimary,
	DefectPartialBlack:       DefectCategorySecondary,
	DefectPartialSour:        DefectCategorySecondary,
	DefectParchment:          DefectCategorySecondary,
	DefectFloater:            DefectCategorySecondary,
	DefectImmatureUnripe:     DefectCategorySecondary,
	DefectWithered:           DefectCategorySecondary,
	DefectShell:              DefectCategorySecondary,
	DefectBrokenChippedCut:   DefectCategorySecondary,
	DefectHullHusk:           DefectCategorySecondary,
	DefectSlightInsectDamage: DefectCategorySecondary,
}

// Classification is the SCA green coffee quality tier derived from
// full defect equivalents. OffGrade is reserved for manual override and is
// never produced by the classifier.
type Classification string

const (
	ClassificationSpecialty     Classification = "SPECIALTY_GRADE"
	ClassificationPremium       Classification = "PREMIUM_GRADE"
	ClassificationExchange      Classification = "EXCHANGE_GRADE"
	ClassificationBelowStandard Classification = "BELOW_STANDARD"
	ClassificationOffGrade      Classification = "OFF_GRADE"
)

// GradeLabels maps a classification to its human-readable grade label.
var GradeLabels = map[Classification]string{
	ClassificationSpecialty:     "Grade 1",
	ClassificationPremium:       "Grade 2",
	ClassificationExchange:      "Grade 3",
	ClassificationBelowStandard: "Below Standard",
	ClassificationOffGrade:      "Off Grade",
}

// BeanColor enumerates the visual color assessments for green beans.
type BeanColor string

const (
	BeanColorBlueGreen   BeanColor = "blue_green"
	BeanColorBluishGreen BeanColor = "bluish_green"
	BeanColorGreen       BeanColor = "green"
	BeanColorGreenish    BeanColor = "greenish"
	BeanColorYellowGreen BeanColor = "yellow_green"
	BeanColorPaleYellow  BeanColor = "pale_yellow"
	BeanColorYellowish   BeanColor = "yellowish"
	BeanColorBrownish    BeanColor = "brownish"
)

// AllowedBeanColors is the closed set of accepted color assessments.
var AllowedBeanColors = map[BeanColor]bool{
	BeanColorBlueGreen:   true,
	BeanColorBluishGreen: true,
	BeanColorGreen:       true,
	BeanColorGreenish:    true,
	BeanColorYellowGreen: true,
	BeanColorPaleYellow:  true,
	BeanColorYellowish:   true,
	BeanColorBrownish:    true,
}

// SessionStatus represents the lifecycle of a cupping session.
type SessionStatus string

const (
	SessionStatusDraft      SessionStatus = "draft"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusArchived   SessionStatus = "archived"
)

// FileType represents the allowed file types for sample attachments.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// FileStatus represents the lifecycle of an uploaded attachment.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)
