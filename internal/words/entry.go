package words

// Entry is a single vocabulary record. Entries are value types; copies
// handed out by the store never alias its internal slice.
type Entry struct {
	Word         string `json:"word"`
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"partOfSpeech"`
}

// Field names an Entry field for keyed lookups.
type Field string

const (
	FieldWord         Field = "word"
	FieldTranslation  Field = "translation"
	FieldPartOfSpeech Field = "partOfSpeech"
)

// get returns the value of the named field, or "" for an unknown field.
func (e Entry) get(f Field) string {
	switch f {
	case FieldWord:
		return e.Word
	case FieldTranslation:
		return e.Translation
	case FieldPartOfSpeech:
		return e.PartOfSpeech
	}
	return ""
}

// EntryUpdate is a partial entry for EditWord. Nil fields are left
// unchanged; set fields overwrite the stored value.
type EntryUpdate struct {
	Word         *string
	Translation  *string
	PartOfSpeech *string
}

// apply merges the update into e.
func (u EntryUpdate) apply(e *Entry) {
	if u.Word != nil {
		e.Word = *u.Word
	}
	if u.Translation != nil {
		e.Translation = *u.Translation
	}
	if u.PartOfSpeech != nil {
		e.PartOfSpeech = *u.PartOfSpeech
	}
}
