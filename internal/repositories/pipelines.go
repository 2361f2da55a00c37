package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"matchmate_backend/internal/database"
	"matchmate_backend/internal/models"
)

// PremiumListingLimit caps the public premium listing.
const PremiumListingLimit = 6

// Sort directions for the premium listing. Zero means "no explicit order":
// an unparseable direction drops the $sort stage instead of erroring.
const (
	SortAscending  = 1
	SortDescending = -1
	SortNone       = 0
)

// ParseSortDirection maps the caller-supplied age query value onto a sort
// direction. Accepts the numeric form the original frontend sends ("1"/"-1")
// as well as asc/desc spellings; anything else clamps to SortNone.
func ParseSortDirection(raw string) int {
	switch raw {
	case "1", "asc", "ascending":
		return SortAscending
	case "-1", "desc", "descending":
		return SortDescending
	default:
		return SortNone
	}
}

// PremiumListingPipeline joins premium users to their biodata by email and
// projects the public card shape: membership metadata plus a whitelisted
// subset of biodata fields. The base user survives even without a biodata
// (preserveNullAndEmptyArrays).
func PremiumListingPipeline(sortDir int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "type", Value: models.MembershipPremium},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionBiodata},
			{Key: "localField", Value: "email"},
			{Key: "foreignField", Value: "email"},
			{Key: "as", Value: "bioDataInfo"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$bioDataInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "bioId", Value: 1},
			{Key: "reqName", Value: 1},
			{Key: "email", Value: 1},
			{Key: "type", Value: 1},
			{Key: "makeDate", Value: 1},
			{Key: "profileBioId", Value: "$bioDataInfo._id"},
			{Key: "biodataType", Value: "$bioDataInfo.biodataType"},
			{Key: "image", Value: "$bioDataInfo.image"},
			{Key: "info.permanentDivision", Value: "$bioDataInfo.info.permanentDivision"},
			{Key: "info.age", Value: "$bioDataInfo.info.age"},
			{Key: "info.occupation", Value: "$bioDataInfo.info.occupation"},
		}}},
	}

	if sortDir == SortAscending || sortDir == SortDescending {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "info.age", Value: sortDir},
		}}})
	}

	return append(pipeline, bson.D{{Key: "$limit", Value: PremiumListingLimit}})
}

// FavoritesViewPipeline joins a viewer's favorites to the referenced biodata.
// The stored serverId is a string while bioData is keyed by ObjectID, so the
// join goes through $convert with onError/onNull nil: an unparseable id
// produces a favorite row with empty joined fields instead of a fault.
func FavoritesViewPipeline(email string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "email", Value: email},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "serverIdAsObjectId", Value: bson.D{
				{Key: "$convert", Value: bson.D{
					{Key: "input", Value: "$serverId"},
					{Key: "to", Value: "objectId"},
					{Key: "onError", Value: nil},
					{Key: "onNull", Value: nil},
				}},
			}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CollectionBiodata},
			{Key: "localField", Value: "serverIdAsObjectId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "myFavoriteData"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$myFavoriteData"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: "$myFavoriteData.info.name"},
			{Key: "bioDataId", Value: "$myFavoriteData.bioId"},
			{Key: "permanentAddress", Value: "$myFavoriteData.info.permanentDivision"},
			{Key: "occupation", Value: "$myFavoriteData.info.occupation"},
		}}},
	}
}

// RevenuePipeline sums amount over every contact request regardless of status.
func RevenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
}
