package bot

// DefaultRules 平台内置的初始应答规则
func DefaultRules() []ResponseRule {
	return []ResponseRule{
		{
			Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"},
			Response: "Hello! Welcome to Fresh Meat & Seafood Platform! 🍖🐟 I'm FreshBot, your personal assistant. How can I help you find the perfect meat or seafood today?",
			Priority: 10,
			Active:   true,
		},
		{
			Keywords: []string{"cancel", "return", "refund", "exchange", "problem", "issue"},
			Response: "I'm sorry to hear about the issue. We want to make this right! 🔄\n• Easy cancellation before dispatch\n• Hassle-free returns within 24 hours\n• Full refund for quality issues\n• Quick exchange options\n\nPlease share your order details and specific concern so I can assist you better.",
			Priority: 10, EscalateToAgent: true,
			Active: true,
		},
		{
			Keywords: []string{"delivery", "shipping", "how long", "when will arrive"},
			Response: "We offer multiple delivery options:\n• Express Delivery: 2-4 hours (same day)\n• Standard Delivery: Next day\n• Scheduled Delivery: Choose your preferred time slot\n\nAll deliveries use our cold-chain system to ensure freshness! What delivery option works best for you?",
			Priority: 9,
			Active:   true,
		},
		{
			Keywords: []string{"fresh", "quality", "how fresh", "guarantee"},
			Response: "Quality and freshness are our top priorities! 🌟\n• Daily fresh arrivals from trusted suppliers\n• Cold storage chain maintained throughout\n• Quality checks at multiple stages\n• 100% freshness guarantee\n• Easy returns if not satisfied\n\nYour satisfaction is guaranteed!",
			Priority: 9,
			Active:   true,
		},
		{
			Keywords: []string{"order", "track", "tracking", "status", "where is my order"},
			Response: "I can help you track your order! 📦 Please provide:\n• Your order number, or\n• The phone number/email used for the order\n\nI'll get you the latest status and delivery updates right away!",
			Priority: 9,
			Active:   true,
		},
		{
			Keywords: []string{"hours", "timing", "open", "close", "schedule"},
			Response: "Our store hours vary by location, but most of our stores are open from 8:00 AM to 10:00 PM daily. Our online platform is available 24/7 for your convenience! Would you like information about a specific store location?",
			Priority: 8,
			Active:   true,
		},
		{
			Keywords: []string{"payment", "pay", "card", "cash", "refund", "money"},
			Response: "We accept various payment methods:\n• Credit/Debit Cards (Visa, MasterCard, Rupay)\n• Digital Wallets (Paytm, PhonePe, Google Pay)\n• UPI Payments\n• Cash on Delivery\n• Net Banking\n\nAll payments are processed securely. Need help with a specific payment method?",
			Priority: 8,
			Active:   true,
		},
		{
			Keywords: []string{"price", "cost", "expensive", "cheap", "discount", "offer", "deal"},
			Response: "We offer competitive prices for premium quality! 💰\n• Daily special offers\n• Bulk purchase discounts\n• Member exclusive deals\n• Seasonal promotions\n• Price matching on select items\n\nWhat specific products are you interested in? I can check current pricing and offers!",
			Priority: 8,
			Active:   true,
		},
		{
			Keywords: []string{"chicken", "poultry", "hen", "broiler"},
			Response: "We have an excellent selection of fresh chicken! 🐔\n• Farm-fresh broiler chicken\n• Free-range country chicken\n• Organic chicken options\n• Ready-to-cook cuts available\n• Whole chicken and parts\n\nWould you like to see our current chicken varieties and prices?",
			Priority: 7,
			Active:   true,
		},
		{
			Keywords: []string{"fish", "seafood", "salmon", "tuna", "prawns", "crab"},
			Response: "Fresh from the waters! 🐟🦐 Our seafood selection includes:\n• Daily fresh fish varieties\n• Premium salmon and tuna\n• Live and fresh prawns\n• Crab, lobster, and shellfish\n• Cleaned and ready-to-cook options\n\nWhat type of seafood are you looking for today?",
			Priority: 7,
			Active:   true,
		},
		{
			Keywords: []string{"beef", "mutton", "lamb", "goat", "red meat"},
			Response: "Our premium red meat collection includes: 🥩\n• Fresh beef cuts (various grades)\n• Tender mutton and lamb\n• Goat meat (chevon)\n• Marinated and ready-to-cook options\n• Custom cutting available\n\nAll meats are sourced from certified suppliers. Which cut interests you?",
			Priority: 7,
			Active:   true,
		},
		{
			Keywords: []string{"store", "location", "address", "near me", "branch", "where"},
			Response: "Find a store near you! 📍 I can help you locate:\n• Nearest store locations\n• Store addresses and contact\n• Driving directions\n• Store-specific timings\n• Available services at each location\n\nWhich area are you looking for stores in?",
			Priority: 7,
			Active:   true,
		},
		{
			Keywords: []string{"account", "profile", "login", "register", "password", "sign up"},
			Response: "Account assistance is here! 👤\n• Create new account easily\n• Reset forgotten passwords\n• Update profile information\n• Manage delivery addresses\n• View order history\n\nWhat specific account help do you need?",
			Priority: 7,
			Active:   true,
		},
		{
			Keywords: []string{"recipe", "cook", "cooking", "marinate", "prepare", "how to"},
			Response: "Love to cook? I can share some delicious recipes! 👩‍🍳\n• Quick weekday meals\n• Special occasion dishes\n• Marination tips\n• Cooking techniques\n• Spice recommendations\n\nWhich meat or seafood would you like recipe ideas for?",
			Priority: 6,
			Active:   true,
		},
		{
			Keywords: []string{"thank you", "thanks", "great", "good", "excellent", "awesome"},
			Response: "Thank you so much for your kind words! 😊 We're thrilled you're happy with our service. Your satisfaction is our greatest reward! Is there anything else I can help you with today?",
			Priority: 5,
			Active:   true,
		},
		{
			Keywords: []string{"bye", "goodbye", "see you", "exit", "quit", "done"},
			Response: "Thank you for choosing Fresh Meat & Seafood Platform! 👋 Have a wonderful day and happy cooking! Feel free to return anytime for premium quality products. Take care! 🍖🐟",
			Priority: 5,
			Active:   true,
		},
	}
}
