package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
)

// EmailMap is a map keyed by email address. On the wire it is a plain JSON
// object {"a@x.com": "Alice"}. In the database it is stored as a jsonb
// association list [{"email": "a@x.com", "value": "Alice"}] because email
// addresses contain characters that are awkward as document keys. Both
// representations must round-trip losslessly.
type EmailMap map[string]string

type emailPair struct {
	Email string `json:"email"`
	Value string `json:"value"`
}

func (m EmailMap) Value() (driver.Value, error) {
	pairs := make([]emailPair, 0, len(m))
	for email, value := range m {
		pairs = append(pairs, emailPair{Email: email, Value: value})
	}
	// Deterministic storage order.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Email < pairs[j].Email })
	return json.Marshal(pairs)
}

func (m *EmailMap) Scan(value interface{}) error {
	if value == nil {
		*m = EmailMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	var pairs []emailPair
	if err := json.Unmarshal(b, &pairs); err != nil {
		return err
	}
	out := make(EmailMap, len(pairs))
	for _, p := range pairs {
		out[p.Email] = p.Value
	}
	*m = out
	return nil
}

// StringList is a jsonb-backed string array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
