package seed

import "github.com/marierupasinghe/FreshEats/models"

// Reference dataset written into an empty catalog store exactly once.

func Categories() []models.Category {
	return []models.Category{
		{
			Name:        "Pre-Workout",
			Description: "Energy boosting meals to fuel your training",
			Icon:        "zap",
			ItemCount:   15,
		},
		{
			Name:        "Post-Workout",
			Description: "Recovery meals rich in protein and nutrients",
			Icon:        "activity",
			ItemCount:   22,
		},
		{
			Name:        "Heart Healthy",
			Description: "Cardiovascular wellness focused nutrition",
			Icon:        "heart",
			ItemCount:   18,
		},
		{
			Name:        "Weight Management",
			Description: "Balanced meals for your fitness goals",
			Icon:        "target",
			ItemCount:   25,
		},
	}
}

func FoodItems() []models.FoodItem {
	return []models.FoodItem{
		{
			Name:        "Grilled Chicken Quinoa Bowl",
			Description: "Lean protein with complete amino acids, quinoa, and steamed broccoli. Perfect post-workout meal.",
			Price:       12.99,
			Calories:    450,
			Protein:     "35g",
			Image:       "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Post-Workout",
		},
		{
			Name:        "Salmon Sweet Potato Power",
			Description: "Omega-3 rich salmon with roasted sweet potato and mixed greens. Great for muscle recovery.",
			Price:       15.99,
			Calories:    520,
			Protein:     "32g",
			Image:       "https://images.pexels.com/photos/725991/pexels-photo-725991.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Post-Workout",
		},
		{
			Name:        "Protein Power Smoothie Bowl",
			Description: "Plant-based protein blend with berries, nuts, and seeds. Ideal pre or post-workout fuel.",
			Price:       9.99,
			Calories:    380,
			Protein:     "25g",
			Image:       "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Pre-Workout",
		},
		{
			Name:        "Turkey Avocado Wrap",
			Description: "Whole grain wrap with lean turkey, avocado, and fresh vegetables.",
			Price:       8.99,
			Calories:    420,
			Protein:     "30g",
			Image:       "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Weight Management",
		},
		{
			Name:        "Greek Yogurt Parfait",
			Description: "High-protein Greek yogurt with fresh berries and granola.",
			Price:       6.99,
			Calories:    280,
			Protein:     "20g",
			Image:       "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Heart Healthy",
		},
		{
			Name:        "Tuna Poke Bowl",
			Description: "Fresh tuna with brown rice, edamame, and vegetables.",
			Price:       13.99,
			Calories:    420,
			Protein:     "30g",
			Image:       "https://images.pexels.com/photos/725991/pexels-photo-725991.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Heart Healthy",
		},
		{
			Name:        "Chicken Salad",
			Description: "Fresh chicken with lettuce, tomatoes, and cucumbers.",
			Price:       10.99,
			Calories:    320,
			Protein:     "30g",
			Image:       "https://images.pexels.com/photos/725991/pexels-photo-725991.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Heart Healthy",
		},
		{
			Name:        "Oatmeal Banana Energy Bowl",
			Description: "Steel-cut oats with banana, chia seeds, and almond butter. Slow-release carbs for pre-workout energy.",
			Price:       7.99,
			Calories:    350,
			Protein:     "12g",
			Image:       "https://images.pexels.com/photos/461382/pexels-photo-461382.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Pre-Workout",
		},
		{
			Name:        "Egg White Veggie Scramble",
			Description: "Egg whites scrambled with spinach, tomatoes, and peppers. Low-calorie, high-protein breakfast.",
			Price:       8.49,
			Calories:    210,
			Protein:     "22g",
			Image:       "https://images.pexels.com/photos/5938/food-healthy-breakfast-egg.jpg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Weight Management",
		},
		{
			Name:        "Quinoa Black Bean Salad",
			Description: "Quinoa, black beans, corn, and avocado tossed in a lime vinaigrette. Plant-based and filling.",
			Price:       9.49,
			Calories:    390,
			Protein:     "16g",
			Image:       "https://images.pexels.com/photos/1640775/pexels-photo-1640775.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Heart Healthy",
		},
		{
			Name:        "Beef & Broccoli Stir Fry",
			Description: "Lean beef strips with broccoli and bell peppers in a light soy-ginger sauce. Served with brown rice.",
			Price:       13.49,
			Calories:    480,
			Protein:     "36g",
			Image:       "https://images.pexels.com/photos/461382/pexels-photo-461382.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Post-Workout",
		},
		{
			Name:        "Avocado Toast with Poached Egg",
			Description: "Whole grain toast topped with smashed avocado and a poached egg. Simple, healthy, and delicious.",
			Price:       7.49,
			Calories:    320,
			Protein:     "14g",
			Image:       "https://images.pexels.com/photos/1640776/pexels-photo-1640776.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Pre-Workout",
		},
		{
			Name:        "Lentil & Spinach Soup",
			Description: "Hearty lentil soup with spinach, carrots, and celery. High in fiber and protein.",
			Price:       8.99,
			Calories:    260,
			Protein:     "18g",
			Image:       "https://images.pexels.com/photos/461382/pexels-photo-461382.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Heart Healthy",
		},
		{
			Name:        "Shrimp Brown Rice Bowl",
			Description: "Grilled shrimp with brown rice, edamame, and sesame seeds. Light and protein-rich.",
			Price:       14.49,
			Calories:    410,
			Protein:     "28g",
			Image:       "https://images.pexels.com/photos/461382/pexels-photo-461382.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Weight Management",
		},
		{
			Name:        "Berry Beet Pre-Workout Juice",
			Description: "Fresh beet, berry, and orange juice blend. Boosts nitric oxide for better workouts.",
			Price:       5.99,
			Calories:    120,
			Protein:     "2g",
			Image:       "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Pre-Workout",
		},
		{
			Name:        "Chickpea & Kale Power Bowl",
			Description: "Roasted chickpeas, kale, sweet potato, and tahini dressing. Vegan and nutrient-dense.",
			Price:       10.49,
			Calories:    410,
			Protein:     "17g",
			Image:       "https://images.pexels.com/photos/1640775/pexels-photo-1640775.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Weight Management",
		},
		{
			Name:        "Cottage Cheese Fruit Plate",
			Description: "Low-fat cottage cheese with pineapple, berries, and melon. Light and refreshing.",
			Price:       6.49,
			Calories:    220,
			Protein:     "19g",
			Image:       "https://images.pexels.com/photos/1640776/pexels-photo-1640776.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Heart Healthy",
		},
		{
			Name:        "Tofu Stir Fry",
			Description: "Tofu cubes stir-fried with broccoli, carrots, and snap peas in a ginger garlic sauce.",
			Price:       9.99,
			Calories:    340,
			Protein:     "21g",
			Image:       "https://images.pexels.com/photos/1640775/pexels-photo-1640775.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Weight Management",
		},
		{
			Name:        "Almond Butter Banana Wrap",
			Description: "Whole wheat wrap with almond butter, banana, and a sprinkle of chia seeds.",
			Price:       7.49,
			Calories:    310,
			Protein:     "10g",
			Image:       "https://images.pexels.com/photos/1640776/pexels-photo-1640776.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Pre-Workout",
		},
		{
			Name:        "Baked Cod with Asparagus",
			Description: "Oven-baked cod fillet with lemon, served with steamed asparagus and brown rice.",
			Price:       13.99,
			Calories:    370,
			Protein:     "34g",
			Image:       "https://images.pexels.com/photos/725991/pexels-photo-725991.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Heart Healthy",
		},
	}
}
