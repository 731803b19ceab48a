package fixed

func Max(a, b Point) Point {
	if a.Gt(b) {
		return a
	}
	return b
}

func Min(a, b Point) Point {
	if a.Lt(b) {
		return a
	}
	return b
}
