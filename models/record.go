package models

// Record is one (name, length) pair taken from a single source line.
type Record struct {
	Name   string  `json:"name"`
	Length float32 `json:"length_cm"`
}

func (Record) CSVHeader() []string {
	return []string{"name", "length_cm"}
}

func (r *Record) CSVRow() []string {
	return []string{r.Name, ftoa32(r.Length)}
}

// String formats the record as "{name}, {length}cm".
func (r Record) String() string {
	return r.Name + ", " + ftoa32(r.Length) + "cm"
}
