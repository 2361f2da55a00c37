package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseSortDirection(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1", SortAscending},
		{"asc", SortAscending},
		{"ascending", SortAscending},
		{"-1", SortDescending},
		{"desc", SortDescending},
		{"descending", SortDescending},
		{"", SortNone},
		{"0", SortNone},
		{"banana", SortNone},
		{"2", SortNone},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortDirection(tt.raw))
		})
	}
}

// stageName returns the operator of a pipeline stage ("$match", "$sort", ...).
func stageName(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

func TestPremiumListingPipeline(t *testing.T) {
	t.Run("sorted pipeline carries a sort stage before the limit", func(t *testing.T) {
		pipeline := PremiumListingPipeline(SortDescending)

		var names []string
		for _, stage := range pipeline {
			names = append(names, stageName(stage))
		}
		assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$project", "$sort", "$limit"}, names)

		sortStage := pipeline[4]
		sortSpec, ok := sortStage[0].Value.(bson.D)
		require.True(t, ok)
		assert.Equal(t, "info.age", sortSpec[0].Key)
		assert.Equal(t, SortDescending, sortSpec[0].Value)
	})

	t.Run("unparseable direction drops the sort stage", func(t *testing.T) {
		pipeline := PremiumListingPipeline(SortNone)

		for _, stage := range pipeline {
			assert.NotEqual(t, "$sort", stageName(stage))
		}
	})

	t.Run("result size is always capped at six", func(t *testing.T) {
		for _, dir := range []int{SortAscending, SortDescending, SortNone} {
			pipeline := PremiumListingPipeline(dir)
			last := pipeline[len(pipeline)-1]
			require.Equal(t, "$limit", stageName(last))
			assert.Equal(t, PremiumListingLimit, last[0].Value)
		}
	})

	t.Run("base records survive an empty join", func(t *testing.T) {
		pipeline := PremiumListingPipeline(SortNone)
		unwind := pipeline[2]
		require.Equal(t, "$unwind", stageName(unwind))

		spec, ok := unwind[0].Value.(bson.D)
		require.True(t, ok)
		assert.Equal(t, bson.D{
			{Key: "path", Value: "$bioDataInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}, spec)
	})
}

func TestFavoritesViewPipeline(t *testing.T) {
	pipeline := FavoritesViewPipeline("viewer@example.com")

	t.Run("matches the viewer identity", func(t *testing.T) {
		match := pipeline[0]
		require.Equal(t, "$match", stageName(match))
		assert.Equal(t, bson.D{{Key: "email", Value: "viewer@example.com"}}, match[0].Value)
	})

	t.Run("key coercion is fallible, not throwing", func(t *testing.T) {
		addFields := pipeline[1]
		require.Equal(t, "$addFields", stageName(addFields))

		fields, ok := addFields[0].Value.(bson.D)
		require.True(t, ok)
		convert, ok := fields[0].Value.(bson.D)
		require.True(t, ok)
		spec, ok := convert[0].Value.(bson.D)
		require.True(t, ok)

		specMap := spec.Map()
		assert.Equal(t, "$serverId", specMap["input"])
		assert.Equal(t, "objectId", specMap["to"])
		assert.Contains(t, specMap, "onError")
		assert.Nil(t, specMap["onError"])
	})

	t.Run("joins bioData by primary key and preserves unmatched rows", func(t *testing.T) {
		var names []string
		for _, stage := range pipeline {
			names = append(names, stageName(stage))
		}
		assert.Equal(t, []string{"$match", "$addFields", "$lookup", "$unwind", "$project"}, names)

		lookup, ok := pipeline[2][0].Value.(bson.D)
		require.True(t, ok)
		lookupMap := lookup.Map()
		assert.Equal(t, "bioData", lookupMap["from"])
		assert.Equal(t, "_id", lookupMap["foreignField"])
	})
}
