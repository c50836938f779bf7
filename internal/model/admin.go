package model

type AdminDecision struct {
	IsAdmin   bool
	SubjectID string
	Verified  bool
}

// AllowList is the set of identity-provider subjects permitted to mutate records.
type AllowList map[string]struct{}

func NewAllowList(subjects ...string) AllowList {
	list := make(AllowList, len(subjects))
	for _, s := range subjects {
		if s == "" {
			continue
		}
		list[s] = struct{}{}
	}
	return list
}

func (a AllowList) Contains(subject string) bool {
	_, ok := a[subject]
	return ok
}
