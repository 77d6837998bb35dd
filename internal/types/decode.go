package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// StringList is a sequence of strings that decodes leniently: null becomes
// empty, a lone string becomes a one-element list, and non-string elements
// are dropped instead of failing the whole document.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var single string
		if json.Unmarshal(data, &single) == nil && single != "" {
			*l = StringList{single}
			return nil
		}
		*l = nil
		return nil
	}
	if raw == nil {
		*l = nil
		return nil
	}

	out := make(StringList, 0, len(raw))
	for _, elem := range raw {
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	*l = out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A bare string is accepted as a
// keyword with zero weight; a missing or unparsable frequency becomes 0.
func (k *ATSKeyword) UnmarshalJSON(data []byte) error {
	var raw struct {
		Keyword   json.RawMessage `json:"keyword"`
		Frequency json.RawMessage `json:"frequency"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		var bare string
		if json.Unmarshal(data, &bare) == nil {
			*k = ATSKeyword{Keyword: bare}
			return nil
		}
		*k = ATSKeyword{}
		return nil
	}

	*k = ATSKeyword{
		Keyword:   decodeString(raw.Keyword),
		Frequency: decodeWeight(raw.Frequency),
	}
	return nil
}

// decodeString returns the string value of a raw JSON scalar, or "" otherwise
func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// decodeText is decodeString that also keeps numbers, written as they
// appear in the document ("year": 2018 becomes "2018")
func decodeText(raw json.RawMessage) string {
	if s := decodeString(raw); s != "" {
		return s
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return ""
	}
	return n.String()
}

// UnmarshalJSON implements json.Unmarshaler. Scalar fields holding a number
// keep its text; any other mistyped field becomes empty.
func (e *Experience) UnmarshalJSON(data []byte) error {
	var raw struct {
		Company  json.RawMessage `json:"company"`
		Role     json.RawMessage `json:"role"`
		Duration json.RawMessage `json:"duration"`
		Bullets  StringList      `json:"bullets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*e = Experience{}
		return nil
	}
	*e = Experience{
		Company:  decodeText(raw.Company),
		Role:     decodeText(raw.Role),
		Duration: decodeText(raw.Duration),
		Bullets:  raw.Bullets,
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler with the same coercion as
// Experience
func (e *Education) UnmarshalJSON(data []byte) error {
	var raw struct {
		Degree      json.RawMessage `json:"degree"`
		Institution json.RawMessage `json:"institution"`
		Year        json.RawMessage `json:"year"`
		Details     json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*e = Education{}
		return nil
	}
	*e = Education{
		Degree:      decodeText(raw.Degree),
		Institution: decodeText(raw.Institution),
		Year:        decodeText(raw.Year),
		Details:     decodeText(raw.Details),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler with the same coercion as
// Experience
func (a *AdditionalSection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title json.RawMessage `json:"title"`
		Items StringList      `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = AdditionalSection{}
		return nil
	}
	*a = AdditionalSection{Title: decodeText(raw.Title), Items: raw.Items}
	return nil
}

// decodeWeight accepts a JSON number or numeric string and clamps it at zero
func decodeWeight(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return 0
		}
		parsed, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if perr != nil {
			return 0
		}
		f = parsed
	}

	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	return int(math.Round(f))
}

// UnmarshalJSON implements json.Unmarshaler. Categories keep their document
// order. A flat array is accepted as a single "skills" category.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		*s = nil
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		var flat StringList
		_ = json.Unmarshal(data, &flat)
		if len(flat) == 0 {
			*s = nil
			return nil
		}
		*s = SkillSet{{Name: "skills", Skills: flat}}
		return nil
	}

	var out SkillSet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var items StringList
		_ = json.Unmarshal(raw, &items)
		out = append(out, SkillCategory{Name: name, Skills: items})
	}
	*s = out
	return nil
}

// MarshalJSON implements json.Marshaler, writing categories in order
func (s SkillSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		skills := cat.Skills
		if skills == nil {
			skills = []string{}
		}
		val, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts either an object of
// question -> answer (document order kept) or an array of
// {question, answer} objects or plain strings.
func (a *UserAnswers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		*a = nil
		return nil
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		var single string
		if json.Unmarshal(data, &single) == nil && single != "" {
			*a = UserAnswers{{Answer: single}}
			return nil
		}
		*a = nil
		return nil
	}

	var out UserAnswers
	switch delim {
	case '{':
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			question, _ := keyTok.(string)
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			if answer := answerText(raw); answer != "" {
				out = append(out, UserAnswer{Question: question, Answer: answer})
			}
		}
	case '[':
		for dec.More() {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			var pair struct {
				Question string          `json:"question"`
				Answer   json.RawMessage `json:"answer"`
			}
			if json.Unmarshal(raw, &pair) == nil {
				if answer := answerText(pair.Answer); answer != "" {
					out = append(out, UserAnswer{Question: pair.Question, Answer: answer})
				}
				continue
			}
			if answer := answerText(raw); answer != "" {
				out = append(out, UserAnswer{Answer: answer})
			}
		}
	}
	*a = out
	return nil
}

// answerText renders a string or number answer; other shapes yield ""
func answerText(raw json.RawMessage) string {
	if s := decodeString(raw); s != "" {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
