package types

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// AikidoID represents an identifier of an Aikido resource. The API returns
// numeric IDs, but they are only ever echoed back in query strings and links,
// so both JSON numbers and strings are accepted.
type AikidoID string

// String returns the string representation
func (id AikidoID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both `123` and `"123"`
func (id *AikidoID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return goerr.Wrap(err, "failed to decode Aikido ID", goerr.V("data", string(data)))
		}
		*id = AikidoID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return goerr.Wrap(err, "failed to decode Aikido ID", goerr.V("data", string(data)))
	}
	*id = AikidoID(n.String())
	return nil
}

// ProjectID represents a GitLab project identifier (numeric ID or path)
type ProjectID string

// String returns the string representation
func (id ProjectID) String() string {
	return string(id)
}

// MergeRequestIID represents the project-scoped ID of a merge request
type MergeRequestIID int

// String returns the string representation
func (iid MergeRequestIID) String() string {
	return strconv.Itoa(int(iid))
}

// IsSet returns true if the IID points to a merge request
func (iid MergeRequestIID) IsSet() bool {
	return iid > 0
}

// NoteID represents a GitLab note identifier
type NoteID int

// String returns the string representation
func (id NoteID) String() string {
	return strconv.Itoa(int(id))
}
