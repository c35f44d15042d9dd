package gate

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func openTestDB(t *testing.T, cooldown time.Duration) *DB {
	t.Helper()
	db, err := Open(t.TempDir(), cooldown)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestConsumeUnknownUser verifies a user without a row gets ErrNoCredits.
func TestConsumeUnknownUser(t *testing.T) {
	db := openTestDB(t, time.Hour)
	if _, err := db.Consume(42, time.Now()); !errors.Is(err, ErrNoCredits) {
		t.Errorf("err = %v, want ErrNoCredits", err)
	}
}

// TestConsumePrefersSingle verifies single credits are spent before package
// credits and never hit the cooldown.
func TestConsumePrefersSingle(t *testing.T) {
	db := openTestDB(t, time.Hour)
	if err := db.Grant(1, 1, 2); err != nil {
		t.Fatalf("grant: %v", err)
	}

	now := time.Now()
	for i := 0; i < 2; i++ {
		d, err := db.Consume(1, now)
		if err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
		if !d.Allowed || d.Source != SourceSingle {
			t.Errorf("consume %d = %+v, want allowed single", i, d)
		}
	}

	pkg, single, err := db.Balance(1)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if pkg != 1 || single != 0 {
		t.Errorf("balance = %d/%d, want 1/0", pkg, single)
	}
}

// TestConsumePackageCooldown verifies a package credit starts the cooldown
// and a second use inside the window is denied with a retry hint.
func TestConsumePackageCooldown(t *testing.T) {
	cooldown := time.Hour
	db := openTestDB(t, cooldown)
	if err := db.Grant(1, 3, 0); err != nil {
		t.Fatalf("grant: %v", err)
	}

	start := time.Now()
	d, err := db.Consume(1, start)
	if err != nil {
		t.Fatalf("first consume: %v", err)
	}
	if !d.Allowed || d.Source != SourcePackage {
		t.Fatalf("first consume = %+v, want allowed package", d)
	}

	// 10 minutes later: denied, 50 minutes remaining.
	d, err = db.Consume(1, start.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("second consume: %v", err)
	}
	if d.Allowed {
		t.Fatal("consume inside the cooldown must be denied")
	}
	if d.RetryAfter <= 49*time.Minute || d.RetryAfter > 50*time.Minute {
		t.Errorf("RetryAfter = %v, want ~50m", d.RetryAfter)
	}

	// Past the window: allowed again.
	d, err = db.Consume(1, start.Add(cooldown+time.Minute))
	if err != nil {
		t.Fatalf("third consume: %v", err)
	}
	if !d.Allowed || d.Source != SourcePackage {
		t.Errorf("third consume = %+v, want allowed package", d)
	}

	pkg, _, err := db.Balance(1)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if pkg != 1 {
		t.Errorf("package balance = %d, want 1", pkg)
	}
}

// TestConsumeExhausted verifies a zeroed balance returns ErrNoCredits.
func TestConsumeExhausted(t *testing.T) {
	db := openTestDB(t, time.Hour)
	if err := db.Grant(1, 0, 1); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if _, err := db.Consume(1, time.Now()); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if _, err := db.Consume(1, time.Now()); !errors.Is(err, ErrNoCredits) {
		t.Errorf("err = %v, want ErrNoCredits", err)
	}
}

// TestConsumeConcurrent verifies simultaneous consumers never spend more
// credits than the balance holds.
func TestConsumeConcurrent(t *testing.T) {
	db := openTestDB(t, time.Hour)
	if err := db.Grant(1, 0, 3); err != nil {
		t.Fatalf("grant: %v", err)
	}

	const attempts = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
		denied  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := db.Consume(1, time.Now())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && d.Allowed:
				allowed++
			case errors.Is(err, ErrNoCredits):
				denied++
			default:
				t.Errorf("consume: %+v, %v", d, err)
			}
		}()
	}
	wg.Wait()

	if allowed != 3 || denied != attempts-3 {
		t.Errorf("allowed/denied = %d/%d, want 3/%d", allowed, denied, attempts-3)
	}
	pkg, single, err := db.Balance(1)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if pkg != 0 || single != 0 {
		t.Errorf("balance = %d/%d, want zeros", pkg, single)
	}
}

// TestGrantAccumulates verifies repeated grants add to the balance.
func TestGrantAccumulates(t *testing.T) {
	db := openTestDB(t, time.Hour)
	if err := db.Grant(9, 2, 1); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if err := db.Grant(9, 1, 4); err != nil {
		t.Fatalf("second grant: %v", err)
	}

	pkg, single, err := db.Balance(9)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if pkg != 3 || single != 5 {
		t.Errorf("balance = %d/%d, want 3/5", pkg, single)
	}
}

// TestBalanceUnknownUser verifies a missing row reads as zero balances.
func TestBalanceUnknownUser(t *testing.T) {
	db := openTestDB(t, time.Hour)
	pkg, single, err := db.Balance(404)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if pkg != 0 || single != 0 {
		t.Errorf("balance = %d/%d, want zeros", pkg, single)
	}
}
