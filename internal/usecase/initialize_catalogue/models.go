package initialize_catalogue

// Response reports how the seeding went. Existing slots are left untouched.
type Response struct {
	Total    int
	Created  int
	Existing int
	Failed   int
}
