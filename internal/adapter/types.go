// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Query is one JSON-encoded query of a list request.
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

func OrderDesc(attribute string) Query {
	return Query{Method: "orderDesc", Attribute: attribute}
}

func Limit(n int) Query {
	return Query{Method: "limit", Values: []any{n}}
}

func CursorAfter(documentID string) Query {
	return Query{Method: "cursorAfter", Values: []any{documentID}}
}

func Search(attribute, value string) Query {
	return Query{Method: "search", Attribute: attribute, Values: []any{value}}
}

// IsOrder reports whether q is an ordering query.
func (q Query) IsOrder() bool {
	return strings.HasPrefix(q.Method, "order")
}

func (q Query) String() string {
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Sprintf(`{"method":%q}`, q.Method)
	}
	return string(b)
}

// WithoutOrder returns queries minus the ordering ones.
func WithoutOrder(queries []Query) []Query {
	out := make([]Query, 0, len(queries))
	for _, q := range queries {
		if !q.IsOrder() {
			out = append(out, q)
		}
	}
	return out
}

// Document is a collection document: its id plus its attributes. System
// attributes ("$createdAt", ...) stay in Data.
type Document struct {
	ID   string
	Data map[string]any
}

func (d *Document) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	id, _ := raw["$id"].(string)
	d.ID = id
	d.Data = raw
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Data)+1)
	for k, v := range d.Data {
		out[k] = v
	}
	out["$id"] = d.ID
	return json.Marshal(out)
}

// DocumentList is one page of ListDocuments.
type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// File is an uploaded storage file.
type File struct {
	ID       string `json:"$id"`
	BucketID string `json:"bucketId"`
	Name     string `json:"name"`
	MIME     string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// Execution is the result of a synchronous function run.
type Execution struct {
	ID                 string `json:"$id"`
	Status             string `json:"status"`
	ResponseStatusCode int    `json:"responseStatusCode"`
	ResponseBody       string `json:"responseBody"`
}

// Permissions grants read, update and delete on a resource to userID only.
func Permissions(userID string) []string {
	role := fmt.Sprintf(`"user:%s"`, userID)
	return []string{
		"read(" + role + ")",
		"update(" + role + ")",
		"delete(" + role + ")",
	}
}
