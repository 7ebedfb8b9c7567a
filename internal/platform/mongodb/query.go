package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/atolltravel/offers-api/internal/store"
)

// keyAsc builds a single-field ascending index key document.
func keyAsc(field string) bson.D {
	return bson.D{{Key: field, Value: 1}}
}

// buildOfferQuery translates an OfferFilter into a MongoDB filter document.
// Destination and category are case-insensitive substring matches; price
// bounds are inclusive; all predicates combine with AND.
func buildOfferQuery(filter store.OfferFilter) bson.M {
	query := bson.M{}

	if filter.Destination != "" {
		query["destination"] = primitive.Regex{Pattern: escapeRegex(filter.Destination), Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = primitive.Regex{Pattern: escapeRegex(filter.Category), Options: "i"}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}

// buildOfferSort translates the filter's sort parameters into a sort
// document. Without an explicit sort_by, offers are returned newest first.
// With sort_by and no sort_order, ascending is assumed.
func buildOfferSort(filter store.OfferFilter) bson.D {
	if filter.SortBy == "" {
		return bson.D{{Key: "created_at", Value: -1}}
	}

	direction := 1
	if filter.SortOrder == store.SortDesc {
		direction = -1
	}
	return bson.D{{Key: filter.SortBy, Value: direction}}
}

// buildAdQuery translates an AdFilter into a MongoDB filter document.
// Location is an exact match on the nested placement field.
func buildAdQuery(filter store.AdFilter) bson.M {
	query := bson.M{}

	if filter.Location != "" {
		query["placement.location"] = filter.Location
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}

	return query
}

// escapeRegex escapes regex metacharacters so user input is matched
// literally as a substring.
func escapeRegex(s string) string {
	const meta = `\.+*?()|[]{}^$`
	escaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(meta); j++ {
			if s[i] == meta[j] {
				escaped = append(escaped, '\\')
				break
			}
		}
		escaped = append(escaped, s[i])
	}
	return string(escaped)
}
