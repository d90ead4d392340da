package types

// FieldLabel is the text of a table header cell on a package index page.
type FieldLabel string

const (
	FieldLabelVersions     FieldLabel = "Versions"
	FieldLabelLicense      FieldLabel = "License"
	FieldLabelDependencies FieldLabel = "Dependencies"
)

// FieldLabels lists every label in lookup order.
var FieldLabels = []FieldLabel{
	FieldLabelVersions,
	FieldLabelLicense,
	FieldLabelDependencies,
}

type ConstraintOp string

const (
	ConstraintOpNone ConstraintOp = ""
	ConstraintOpEq   ConstraintOp = "="
	ConstraintOpGte  ConstraintOp = ">="
	ConstraintOpLte  ConstraintOp = "<="
	ConstraintOpGt   ConstraintOp = ">"
	ConstraintOpLt   ConstraintOp = "<"
)

type Architecture string

const (
	ArchitectureBoth   Architecture = "'x86_64' 'i686'"
	ArchitectureX86_64 Architecture = "'x86_64'"
	ArchitectureI686   Architecture = "'i686'"
	ArchitectureAny    Architecture = "'any'"
)

// ArchitectureChoices is the order in which the architecture menu is shown.
var ArchitectureChoices = []struct {
	Label string
	Value Architecture
}{
	{Label: "x86_64 and i686", Value: ArchitectureBoth},
	{Label: "x86_64", Value: ArchitectureX86_64},
	{Label: "i686", Value: ArchitectureI686},
	{Label: "Any", Value: ArchitectureAny},
}
