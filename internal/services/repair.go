package services

import (
	"github.com/unseenapp/unseen-users/internal/models"
)

// The functions in this file plan the writes needed to restore
// referential consistency after a user deletion. They are pure: they
// take loaded records and return the records to write, so each pass can
// be tested without a store. Applying the plans twice is a no-op, since
// a repaired record no longer matches any plan input.

// membershipIDs returns the ids of the memberships to delete. Every
// membership of a deleted user is removed; a former member simply stops
// being a member.
func membershipIDs(memberships []models.UserGroupRelation) []int64 {
	ids := make([]int64, len(memberships))
	for i, membership := range memberships {
		ids[i] = membership.ID
	}
	return ids
}

// anonymizePairs returns rewritten copies of every pair referencing
// userID as gifting or gifted participant, with the matching side set
// to the anonymized sentinel and every other field preserved. Both
// sides are checked independently, so a self-pair is rewritten on both.
// Pairs are never deleted here: a pair is the historical record of a
// completed match.
func anonymizePairs(pairs []models.Pair, userID int64) []models.Pair {
	var rewrites []models.Pair
	for _, pair := range pairs {
		matched := false
		if pair.GiftingUserID == userID {
			pair.GiftingUserID = models.AnonymizedUserID
			matched = true
		}
		if pair.GiftedUserID == userID {
			pair.GiftedUserID = models.AnonymizedUserID
			matched = true
		}
		if matched {
			rewrites = append(rewrites, pair)
		}
	}
	return rewrites
}

// groupRepairPlan is the set of writes that restores ownership
// consistency for the groups a deleted user owned.
type groupRepairPlan struct {
	// transfers holds groups to save with ownership moved to a
	// remaining member.
	transfers []models.Group
	// teardowns holds groups with no members left; each is deleted
	// together with its iterations and their pairs.
	teardowns []models.Group
}

// planGroupRepair decides, for each group owned by the deleted user,
// between ownership transfer and teardown. remainingMembers maps group
// id to the members that still resolve to existing users, in membership
// order; ownership goes to the first of them.
func planGroupRepair(groups []models.Group, remainingMembers map[int64][]models.User) groupRepairPlan {
	var plan groupRepairPlan
	for _, group := range groups {
		members := remainingMembers[group.ID]
		if len(members) > 0 {
			group.OwnerID = members[0].ID
			plan.transfers = append(plan.transfers, group)
		} else {
			plan.teardowns = append(plan.teardowns, group)
		}
	}
	return plan
}
