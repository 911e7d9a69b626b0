package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Document IDs are content-derived so that re-importing identical content
// yields the same identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocumentID derives a document's identity from its normalized question text
// and source provenance. The same content at the same file/line always maps
// to the same ID.
func DocumentID(normalizedQuestion, sourceFile string, sourceLine int) ID {
	return IDFromContent(normalizedQuestion + "\x00" + sourceFile + "\x00" + strconv.Itoa(sourceLine))
}

// KeywordType categorizes an extracted keyword.
type KeywordType int

const (
	// KeywordTypeEntity marks proper nouns, numbers, and date words.
	KeywordTypeEntity KeywordType = iota + 1
	// KeywordTypeTechnical marks acronyms, identifiers, and symbol-bearing terms.
	KeywordTypeTechnical
	// KeywordTypeCommon marks ordinary content words.
	KeywordTypeCommon
	// KeywordTypeStopword marks function words; these never appear in
	// extractor output unless they belong to the protected set.
	KeywordTypeStopword
)

// String returns the lowercase name of the keyword type.
func (t KeywordType) String() string {
	switch t {
	case KeywordTypeEntity:
		return "entity"
	case KeywordTypeTechnical:
		return "technical"
	case KeywordTypeCommon:
		return "common"
	case KeywordTypeStopword:
		return "stopword"
	default:
		return "unknown"
	}
}

// Keyword is a scored term extracted from a question.
type Keyword struct {
	Word       string
	Importance float64 // relevance within the source text, in [0,1]
	Type       KeywordType
}

// QuestionType labels the rhetorical form of a question.
type QuestionType int

const (
	// QuestionTypeUnknown means no type scored above the classification floor.
	QuestionTypeUnknown QuestionType = iota
	QuestionTypeMultipleChoice
	QuestionTypeTrueFalse
	QuestionTypeFillBlank
	QuestionTypeShortAnswer
	QuestionTypeEssay
)

// String returns the hyphenated name of the question type.
func (t QuestionType) String() string {
	switch t {
	case QuestionTypeMultipleChoice:
		return "multiple-choice"
	case QuestionTypeTrueFalse:
		return "true-false"
	case QuestionTypeFillBlank:
		return "fill-blank"
	case QuestionTypeShortAnswer:
		return "short-answer"
	case QuestionTypeEssay:
		return "essay"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying a question's type.
type Classification struct {
	Type       QuestionType
	Confidence float64
}

// QAPair is a raw question/answer pair with source provenance, the unit of import.
type QAPair struct {
	Question   string
	Answer     string
	SourceFile string
	SourceLine int
}

// Document is a stored question/answer pair together with its processed form.
// Documents are immutable once created; the processed fields are a pure
// function of the original question text and recomputing them is idempotent.
type Document struct {
	Id         ID
	Question   string
	Answer     string
	SourceFile string
	SourceLine int

	// Processed form, populated by the ingestion pipeline.
	NormalizedQuestion string
	Keywords           []Keyword // ordered by importance descending, deduplicated, capped
	QuestionType       QuestionType
	TypeConfidence     float64
	CharCount          int
	WordCount          int
	HasNumbers         bool
	HasDates           bool

	InsertedAt time.Time
	UpdatedAt  time.Time
}

// KeywordStrings returns the document's keyword words in importance order.
func (d *Document) KeywordStrings() []string {
	words := make([]string, 0, len(d.Keywords))
	for _, k := range d.Keywords {
		words = append(words, k.Word)
	}
	return words
}
