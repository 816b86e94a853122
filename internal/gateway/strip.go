package gateway

import "sort"

// DerivedColumns are view-only keys: joined customer contact fields and
// values recomputed on every read.
var DerivedColumns = []string{
	"customer_name",
	"customer_phone",
	"customer_email",
	"appointments_count",
	"total_spent",
	"is_low_stock",
	"total_cost",
	"subtotal",
	"tax",
	"total",
}

var derived = func() map[string]struct{} {
	m := make(map[string]struct{}, len(DerivedColumns))
	for _, k := range DerivedColumns {
		m[k] = struct{}{}
	}
	return m
}()

// Strip returns a copy of cols without any derived key.
func Strip(cols map[string]any) map[string]any {
	out := make(map[string]any, len(cols))
	for k, v := range cols {
		if _, ok := derived[k]; ok {
			continue
		}
		out[k] = v
	}
	return out
}

// ColumnNames lists the keys of cols in a stable order.
func ColumnNames(cols map[string]any) []string {
	names := make([]string, 0, len(cols))
	for k := range cols {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
