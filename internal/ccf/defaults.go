package ccf

// DefaultIDs is the option allow-list used when none is configured: the CCF
// options present on the X260 infotainment module.
var DefaultIDs = []int{
	1, 2, 3, 4, 6, 7, 8, 9, 10, 11, 14, 15, 16, 17, 18, 19, 21, 22, 23, 25, 27, 29, 30, 31, 32, 33, 34, 35, 36,
	65, 67, 68, 69, 70, 71, 72, 73, 77, 79, 80, 81, 82, 83, 84, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95, 96,
	97, 98, 99, 100, 101, 102, 105, 107, 108, 109, 110, 111, 112, 113, 114, 116, 117, 119,
}
