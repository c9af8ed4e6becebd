package jobfit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type EmployeeMatch struct {
	EmployeeID string
	Detail     MatchDetail
}

// EmployeeMatches maps employee ids to match details and remembers document
// order, so "first entry whose name matches" is well defined.
type EmployeeMatches struct {
	entries []EmployeeMatch
}

func NewEmployeeMatches(entries ...EmployeeMatch) *EmployeeMatches {
	m := &EmployeeMatches{}
	for _, e := range entries {
		m.Set(e.EmployeeID, e.Detail)
	}
	return m
}

// Set inserts or replaces the detail for id. Replacing keeps the original position.
func (m *EmployeeMatches) Set(id string, d MatchDetail) {
	for i := range m.entries {
		if m.entries[i].EmployeeID == id {
			m.entries[i].Detail = d
			return
		}
	}
	m.entries = append(m.entries, EmployeeMatch{EmployeeID: id, Detail: d})
}

func (m *EmployeeMatches) Get(id string) (MatchDetail, bool) {
	if m == nil {
		return MatchDetail{}, false
	}
	for _, e := range m.entries {
		if e.EmployeeID == id {
			return e.Detail, true
		}
	}
	return MatchDetail{}, false
}

func (m *EmployeeMatches) Entries() []EmployeeMatch {
	if m == nil {
		return nil
	}
	out := make([]EmployeeMatch, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *EmployeeMatches) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// IDByEmployeeName returns the id of the first entry whose detail names employee.
func (m *EmployeeMatches) IDByEmployeeName(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, e := range m.entries {
		if e.Detail.Employee == name {
			return e.EmployeeID, true
		}
	}
	return "", false
}

func (m EmployeeMatches) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.EmployeeID)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Detail)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *EmployeeMatches) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("singleMatchByEmployee: expected object, got %v", tok)
	}

	m.entries = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("singleMatchByEmployee: unexpected key %v", keyTok)
		}
		var d MatchDetail
		if err := dec.Decode(&d); err != nil {
			return fmt.Errorf("singleMatchByEmployee[%s]: %w", key, err)
		}
		m.Set(key, d)
	}

	_, err = dec.Token()
	return err
}

func (m EmployeeMatches) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m.entries {
		val := &yaml.Node{}
		if err := val.Encode(e.Detail); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.EmployeeID},
			val,
		)
	}
	return node, nil
}

func (m *EmployeeMatches) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("singleMatchByEmployee: expected mapping at line %d", value.Line)
	}
	m.entries = nil
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var d MatchDetail
		if err := value.Content[i+1].Decode(&d); err != nil {
			return fmt.Errorf("singleMatchByEmployee[%s]: %w", key, err)
		}
		m.Set(key, d)
	}
	return nil
}
