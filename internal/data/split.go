package data

import (
	"fmt"
	"math/rand"
)

// Split partitions n rows into train and test index sets. Each row is
// assigned to the training set by an independent coin flip with
// probability trainShare, drawn from a generator seeded with seed, so
// the same seed always reproduces the same partition.
func Split(n int, trainShare float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	train = make([]int, 0, n)
	test = make([]int, 0, n)
	for i := 0; i < n; i++ {
		if rng.Float64() < trainShare {
			train = append(train, i)
		} else {
			test = append(test, i)
		}
	}
	return train, test
}

// CheckBalance rejects degenerate partitions: fitting needs both
// classes in the training set, and the ROC sweep needs both in the
// test set.
func CheckBalance(y []int, train, test []int) error {
	if err := checkBoth(y, train, "training"); err != nil {
		return err
	}
	return checkBoth(y, test, "test")
}

func checkBoth(y []int, idx []int, name string) error {
	if len(idx) == 0 {
		return fmt.Errorf("%s set is empty", name)
	}
	var pos, neg int
	for _, i := range idx {
		if y[i] == 1 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return fmt.Errorf("%s set has a single class (%d positive, %d negative)", name, pos, neg)
	}
	return nil
}
