package models

// House - факультет игрока. Назначается после квиза распределения, может быть пустым.
type House string

const (
	HouseGryffindor House = "GRYFFINDOR"
	HouseHufflepuff House = "HUFFLEPUFF"
	HouseRavenclaw  House = "RAVENCLAW"
	HouseSlytherin  House = "SLYTHERIN"
)

// IsValid reports whether the value is one of the known houses.
func (h House) IsValid() bool {
	switch h {
	case HouseGryffindor, HouseHufflepuff, HouseRavenclaw, HouseSlytherin:
		return true
	}
	return false
}

// QuestStatus - статус прохождения квеста игроком.
type QuestStatus string

const (
	QuestStatusPending    QuestStatus = "PENDING"
	QuestStatusAccepted   QuestStatus = "ACCEPTED"
	QuestStatusInProgress QuestStatus = "IN_PROGRESS"
	QuestStatusCompleted  QuestStatus = "COMPLETED"
	QuestStatusFailed     QuestStatus = "FAILED"
)

// ItemType classifies catalog entries.
type ItemType string

const (
	ItemTypeIngredient  ItemType = "INGREDIENT"
	ItemTypePotion      ItemType = "POTION"
	ItemTypeArtifact    ItemType = "ARTIFACT"
	ItemTypeSpellScroll ItemType = "SPELL_SCROLL"
	ItemTypeCollectible ItemType = "COLLECTIBLE"
)

// POIType classifies magical locations on the map.
type POIType string

const (
	POITypeMagicalLandmark      POIType = "MAGICAL_LANDMARK"
	POITypePotionIngredientSpot POIType = "POTION_INGREDIENT_SPOT"
	POITypeCreatureHabitat      POIType = "CREATURE_HABITAT"
	POITypeHistoricalSite       POIType = "HISTORICAL_SITE"
	POITypePlayerSuggested      POIType = "PLAYER_SUGGESTED"
	POITypePortkeyLocation      POIType = "PORTKEY_LOCATION"
)

// ReportType - тип пользовательского отчета о карте.
type ReportType string

const (
	ReportTypeObstruction      ReportType = "OBSTRUCTION"
	ReportTypeNewPath          ReportType = "NEW_PATH"
	ReportTypePOIInaccuracy    ReportType = "POI_INACCURACY"
	ReportTypeNewPOISuggestion ReportType = "NEW_POI_SUGGESTION"
	ReportTypePhotoEvidence    ReportType = "PHOTO_EVIDENCE"
	ReportTypeAccessIssue      ReportType = "ACCESS_ISSUE"
)

// IsValid reports whether the value is a known report type.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeObstruction, ReportTypeNewPath, ReportTypePOIInaccuracy,
		ReportTypeNewPOISuggestion, ReportTypePhotoEvidence, ReportTypeAccessIssue:
		return true
	}
	return false
}

// ReportStatus - статус обработки отчета модерацией/верификацией.
type ReportStatus string

const (
	ReportStatusSubmitted     ReportStatus = "SUBMITTED"
	ReportStatusReviewing     ReportStatus = "REVIEWING"
	ReportStatusVerified      ReportStatus = "VERIFIED"
	ReportStatusRejected      ReportStatus = "REJECTED"
	ReportStatusNeedsMoreInfo ReportStatus = "NEEDS_MORE_INFO"
)

// IsValid reports whether the value is a known report status.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusSubmitted, ReportStatusReviewing, ReportStatusVerified,
		ReportStatusRejected, ReportStatusNeedsMoreInfo:
		return true
	}
	return false
}

// WandCore and WoodType describe the wand catalog.
type WandCore string

const (
	WandCorePhoenixFeather     WandCore = "PHOENIX_FEATHER"
	WandCoreDragonHeartstring  WandCore = "DRAGON_HEARTSTRING"
	WandCoreUnicornHair        WandCore = "UNICORN_HAIR"
	WandCoreVeelaHair          WandCore = "VEELA_HAIR"
	WandCoreThunderbirdFeather WandCore = "THUNDERBIRD_TAIL"
)

type WoodType string

const (
	WoodTypeHolly    WoodType = "HOLLY"
	WoodTypeOak      WoodType = "OAK"
	WoodTypeYew      WoodType = "YEW"
	WoodTypeElder    WoodType = "ELDER"
	WoodTypeHawthorn WoodType = "HAWTHORN"
)
