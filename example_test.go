package bloomset_test

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/jcalabro/bloomset"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	// Create a filter for 10,000 items with 1% false positive rate
	f, err := bloomset.New(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	// Add some items
	f.Add([]byte("apple"))
	f.Add([]byte("banana"))
	f.Add([]byte("cherry"))

	// Test membership
	fmt.Println("apple:", f.Test([]byte("apple")))   // true (added)
	fmt.Println("banana:", f.Test([]byte("banana"))) // true (added)
	fmt.Println("grape:", f.Test([]byte("grape")))   // false (not added)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows how to use string keys without allocation overhead.
func Example_stringKeys() {
	f, _ := bloomset.NewWithParams(1000, 3)

	f.AddString("user:12345")
	f.AddString("user:67890")

	fmt.Println("user:12345 exists:", f.TestString("user:12345"))
	fmt.Println("user:99999 exists:", f.TestString("user:99999"))

	// Output:
	// user:12345 exists: true
	// user:99999 exists: false
}

// This example shows how to monitor filter statistics.
func Example_statistics() {
	f, _ := bloomset.New(10_000, 0.01)

	for i := range 5000 {
		f.Add(fmt.Appendf(nil, "item-%d", i))
	}

	fmt.Printf("Capacity: %d bits\n", f.Cap())
	fmt.Printf("Hash functions (k): %d\n", f.K())
	fmt.Printf("Items added: %d\n", f.Count())
	fmt.Printf("Fill ratio: %.1f%%\n", f.EstimatedFillRatio()*100)

	// Output:
	// Capacity: 95851 bits
	// Hash functions (k): 7
	// Items added: 5000
	// Fill ratio: 30.5%
}

// This example shows the bit positions probed for an item. With the default
// SHA-256 hasher these are the same in every implementation of the scheme.
func Example_indices() {
	f, _ := bloomset.NewWithParams(1000, 3)

	fmt.Println(slices.Collect(f.IndicesString("alice@example.com")))

	// Output:
	// [14 241 41]
}

// This example selects a faster non-cryptographic hasher.
func Example_hasher() {
	f, _ := bloomset.New(10_000, 0.01, bloomset.WithHasher(bloomset.XXH3))

	f.AddString("fast")
	fmt.Println(f.Hasher().Name(), f.TestString("fast"))

	// Output:
	// xxh3 true
}

func ExampleNew() {
	f, err := bloomset.New(1000, 0.01)
	if err != nil {
		panic(err)
	}

	f.AddString("alice@example.com")
	fmt.Println(f.Cap(), f.K(), f.TestString("alice@example.com"))

	// Output:
	// 9586 7 true
}

func ExampleNew_invalid() {
	_, err := bloomset.New(1000, 1)
	fmt.Println(errors.Is(err, bloomset.ErrInvalidArgument))

	// Output:
	// true
}

func ExampleNewAtomic() {
	// Create a thread-safe filter for concurrent access.
	f, _ := bloomset.NewAtomic(100_000, 0.01)

	// Safe to call from multiple goroutines
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		f.AddString("from-goroutine-1")
	}()

	go func() {
		defer wg.Done()
		f.AddString("from-goroutine-2")
	}()

	wg.Wait()
	fmt.Println("Count:", f.Count())

	// Output:
	// Count: 2
}

func ExampleOptimalParams() {
	bitCount, k, _ := bloomset.OptimalParams(1_000_000, 0.01)

	fmt.Printf("For 1M items at 1%% FP rate:\n")
	fmt.Printf("  Bits: %d\n", bitCount)
	fmt.Printf("  Hash functions (k): %d\n", k)

	// Output:
	// For 1M items at 1% FP rate:
	//   Bits: 9585059
	//   Hash functions (k): 7
}

func ExampleEstimateFalsePositiveRate() {
	rate := bloomset.EstimateFalsePositiveRate(9586, 7, 1000)
	fmt.Printf("Estimated FP rate: %.2f%%\n", rate*100)

	// Output:
	// Estimated FP rate: 1.00%
}
