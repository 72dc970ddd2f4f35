package shared

import (
	"context"
	"math"
	"reflect"
	"strconv"
	"strings"

	"atelier/shared/cache"
	"atelier/shared/constant"
	"atelier/shared/dto"
	"atelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the db-tagged, non-zero fields of a struct into a
// map of column updates, stamping the modification metadata. Zero values are
// skipped, so a field that must distinguish cleared from absent uses a
// pointer: a non-nil pointer passes through even when it points at a zero
// value.
func TransformFields(data interface{}, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the pagination params and
// the filter tree so distinct listings never share an entry.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	var builder strings.Builder

	builder.WriteString(prefix)
	builder.WriteString(":")
	builder.WriteString(strconv.Itoa(params.Page))
	builder.WriteString(":")
	builder.WriteString(strconv.Itoa(params.Limit))
	builder.WriteString(":")
	builder.WriteString(params.SortBy)
	builder.WriteString(":")
	builder.WriteString(params.SortDir)
	builder.WriteString(":")
	builder.WriteString(where)

	for _, value := range args {
		builder.WriteString(":")
		builder.WriteString(strings.TrimSpace(strings.ToLower(strings.ReplaceAll(
			strings.ReplaceAll(toString(value), " ", "_"), ":", "_"))))
	}

	return builder.String()
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
