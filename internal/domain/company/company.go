package company

// Company identifies one of the group's businesses. The set is fixed;
// there is no company CRUD.
type Company string

const (
	CafeteriaUPT    Company = "CafeteriaUPT"
	ColonialPachuca Company = "ColonialPachuca"
	Genisa          Company = "Genisa"
)

func All() []Company {
	return []Company{CafeteriaUPT, ColonialPachuca, Genisa}
}

func IsValid(c string) bool {
	switch Company(c) {
	case CafeteriaUPT, ColonialPachuca, Genisa:
		return true
	}
	return false
}

func (c Company) IsValid() bool {
	return IsValid(string(c))
}
