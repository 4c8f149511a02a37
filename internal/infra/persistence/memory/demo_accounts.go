// Package memory contains the in-process account partition store and the
// demonstration dataset generator.
package memory

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"courtside/internal/domain/entity"
)

// The demonstration dataset is a pure function of the seed: the same seed
// always yields the same emails, player ids and handles. Non-key fields
// (password hash, timestamps) carry no identity guarantee across processes.

var demoFirstNames = []string{
	"alex", "sam", "jordan", "casey", "robin", "dana", "morgan", "riley",
	"quinn", "taylor", "jamie", "avery", "drew", "reese", "blake", "emery",
}

var demoLastNames = []string{
	"costa", "novak", "silva", "ito", "berg", "romero", "fischer", "laurent",
	"haas", "moreau", "lindqvist", "ferrara", "okafor", "petit", "vargas", "kato",
}

// demoBaseTime anchors generated timestamps so listings sort stably.
var demoBaseTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxDemoAccounts is the number of distinct first/last combinations the name
// pools can produce. Counts above it cannot yield new unique emails.
var maxDemoAccounts = len(demoFirstNames) * len(demoLastNames)

// generateDemoAccounts derives the demonstration dataset from the seed.
// Every call walks the same pseudo-random sequence, so keys are stable.
// The count is clamped to the pool size: the duplicate-skipping walk can
// never finish past it.
func generateDemoAccounts(seed int64, count int, passwordHash string) []*entity.AccountRecord {
	if count > maxDemoAccounts {
		count = maxDemoAccounts
	}

	rng := rand.New(rand.NewSource(seed))
	records := make([]*entity.AccountRecord, 0, count)
	seen := make(map[string]struct{}, count)

	for i := 0; len(records) < count; i++ {
		first := demoFirstNames[rng.Intn(len(demoFirstNames))]
		last := demoLastNames[rng.Intn(len(demoLastNames))]

		email := fmt.Sprintf("%s.%s@demo.courtside.app", first, last)
		if _, dup := seen[email]; dup {
			// The name pool is finite; skip collisions and keep walking the
			// sequence so the surviving keys stay seed-stable.
			continue
		}
		seen[email] = struct{}{}

		n := len(records) + 1
		records = append(records, &entity.AccountRecord{
			Email:          email,
			Classification: entity.ClassificationDemonstration,
			PlayerID:       fmt.Sprintf("demo-%04d", n),
			Name:           title(first) + " " + title(last),
			Handle:         fmt.Sprintf("%s_%s", first, last),
			PasswordHash:   passwordHash,
			CreatedAt:      demoBaseTime.Add(time.Duration(n) * 24 * time.Hour),
		})
	}

	return records
}

func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
