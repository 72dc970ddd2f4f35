package shared_test

import (
	"reflect"
	"testing"
	"time"

	"atelier/shared"
	"atelier/shared/constant"
	"atelier/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Title       string `db:"title"`
		Description string `db:"description"`
		EmptyField  string `db:"empty_field"`
		NoDBTag     string
	}

	tests := []struct {
		name     string
		data     interface{}
		actor    string
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				Title:       "Walnut Dining Table",
				Description: "Solid walnut",
				EmptyField:  "",
				NoDBTag:     "ignored",
			},
			actor: "admin-1",
			expected: map[string]any{
				"title":       "Walnut Dining Table",
				"description": "Solid walnut",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			actor:    "admin-1",
			expected: map[string]any{},
		},
		{
			name: "struct with partial fields",
			data: TestStruct{
				Title: "Oak Bookshelf",
			},
			actor: "admin-2",
			expected: map[string]any{
				"title": "Oak Bookshelf",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.actor)

			if result[constant.FieldModifiedAt] == nil {
				t.Error("expected modified_at to be set")
			}
			if result[constant.FieldModifiedBy] != tt.actor {
				t.Errorf("expected modified_by to be %s, got %v", tt.actor, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		Name        *string `db:"name"`
		IsPublished *bool   `db:"is_published"`
	}

	name := "Restored Armoire"
	published := false

	data := TestStructWithPointers{
		Name:        &name,
		IsPublished: &published, // present even though the value is false
	}

	result := shared.TransformFields(data, "admin-1")

	expectedFields := map[string]any{
		"name":         &name,
		"is_published": &published,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      "123",
			fieldID: "id",
			table:   "projects",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "123",
						Operator: dto.FilterOperatorEq,
						Table:    "projects",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "456",
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "456",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("project", "get", "project-1")
	if key != "project:get:project-1" {
		t.Errorf("expected project:get:project-1, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	filterA := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "category_id", Value: "cat-1", Operator: dto.FilterOperatorEq},
		},
	}
	filterB := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "category_id", Value: "cat-2", Operator: dto.FilterOperatorEq},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("project:get_all", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("project:get_all", params, filterB)

	if keyA == keyB {
		t.Error("expected different filters to produce different cache keys")
	}

	if keyA != shared.BuildCacheKeyWithQuery("project:get_all", params, filterA) {
		t.Error("expected the same query to produce a stable cache key")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
