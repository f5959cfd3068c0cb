package a

func bad(tags []string) string {
	var result string
	for _, tag := range tags {
		result += tag // want "O\\(n²\\) string concatenation in loop"
	}
	return result
}

func badWithSeparator(tags []string) string {
	var result string
	for _, tag := range tags {
		result += tag + ", " // want "O\\(n²\\) string concatenation in loop"
	}
	return result
}

func good(tags []string) string {
	// Integer addition is fine
	var count int
	for range tags {
		count += 1
	}
	_ = count
	return ""
}

func goodForLoop() string {
	// Regular for loop with int
	sum := 0
	for i := 0; i < 10; i++ {
		sum += i
	}
	_ = sum
	return ""
}
