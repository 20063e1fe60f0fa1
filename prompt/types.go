package prompt

// ============================================================================
// PROMPT — Console boundary for filter and yes/no answers
// ============================================================================
// The Prompter is the ONLY component that reads user input. Every question
// is a read-validate-retry loop: invalid answers get a field-specific
// correction and are asked again, with no retry limit.
// ============================================================================

// Field identifies what an answer is validated against.
type Field int

const (
	FieldRegion Field = iota
	FieldMonth
	FieldDay
	FieldConfirm
)

func (f Field) String() string {
	switch f {
	case FieldRegion:
		return "region"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Questions asked by Filters.
const (
	RegionQuestion = "Which city - Chicago, New York City or Washington? "
	MonthQuestion  = "Which month - January, February, March, April, May, June or All? "
	DayQuestion    = "Which day of the week or All? "
)

// Corrections printed after an invalid answer, per field.
var Corrections = map[Field]string{
	FieldRegion:  "Input invalid! Please pick from Chicago, New York City, Washington: ",
	FieldMonth:   "Input invalid! Please pick from January, February, March, April, May, June or All: ",
	FieldDay:     "Input invalid! Please pick from Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday or All: ",
	FieldConfirm: "Input invalid! Please enter Y or N: ",
}
