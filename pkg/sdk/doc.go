// Package foodeats provides an embedded Go client for the food-eats meal
// search service: the same catalog store and search pipeline the HTTP API
// uses, without running a server.
//
//	client, _ := foodeats.New(
//	    foodeats.WithRedis("localhost:6379", ""),
//	    foodeats.WithGroq(os.Getenv("GROQ_API_KEY")),
//	)
//	defer client.Close()
//
//	_ = client.UpsertRestaurant(ctx, foodeats.Restaurant{ID: "r1", Name: "Bangkok Kitchen"})
//	meal, _ := client.CreateMeal(ctx, foodeats.Meal{Name: "Pad Thai", RestaurantID: "r1", Available: true})
//	results, _ := client.Search(ctx, "something spicy and cheap")
package foodeats
