package types

// PackageInfo is the record rendered into the recipe and installer
// templates.
type PackageInfo struct {
	Date            string
	Repository      string
	MaintainerName  string
	MaintainerAlias string
	MaintainerEmail string
	IndexName       string
	IndexURL        string
	PkgName         string
	PkgVer          string
	PkgRel          string
	PkgDesc         string
	Arch            string
	License         string
	Groups          string
	Depends         string
	OptDepends      string
	MakeDepends     string
	CheckDepends    string
	Provides        string
	Conflicts       string
	Replaces        string
	Options         string
	Checksum        string
}

// PriorRecord holds the key/value pairs read back from a previously
// generated recipe. Keys that were absent are not present in the map.
type PriorRecord map[string]string

func (r PriorRecord) Get(key string) (string, bool) {
	value, ok := r[key]
	return value, ok
}

type WrittenRecipe struct {
	Dir          string
	PKGBUILDPath string
	InstallPath  string
}
