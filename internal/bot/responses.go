package bot

// cannedResponses 各意图的通用话术，每个意图 3 条候选
var cannedResponses = map[string][]string{
	"greeting": {
		"Hello! Welcome to Fresh Meat & Seafood Platform! 🍖🐟 How can I help you today?",
		"Hi there! I'm FreshBot, your personal assistant for all meat and seafood needs. What can I do for you?",
		"Good day! Ready to explore our premium meat and seafood collection? How may I assist you?",
	},
	"product_inquiry": {
		"I'd be happy to help you find the perfect product! What specific meat or seafood are you looking for?",
		"Great choice! Our platform offers premium quality meat and seafood. Which category interests you most?",
		"Looking for something delicious? Tell me more about what you need - fresh cuts, seafood, or something specific?",
	},
	"order_status": {
		"I can help you track your order! Could you please provide your order number or the email used for the order?",
		"Let me check your order status. Do you have your order ID handy?",
		"I'll help you track your delivery! What's your order number?",
	},
	"pricing": {
		"Our prices are competitive and reflect the premium quality of our products. Which items are you interested in?",
		"We offer great value for fresh, quality meat and seafood. What specific products would you like pricing information for?",
		"Looking for the best deals? Check out our daily specials and bulk discounts!",
	},
	"availability": {
		"Let me check what's available for you! What specific products are you looking for?",
		"I can help you find available items. Which meat or seafood products interest you?",
		"Our inventory updates regularly. What items would you like me to check for availability?",
	},
	"delivery": {
		"We offer fast, reliable delivery to keep your products fresh! Delivery times vary by location - typically 2-4 hours for express delivery.",
		"Our delivery service ensures your meat and seafood arrive fresh and safe. What area are you ordering to?",
		"We prioritize freshness with our cold-chain delivery system. Where would you like your order delivered?",
	},
	"payment": {
		"We accept multiple payment methods including cards, digital wallets, and cash on delivery. Need help with payment?",
		"Having payment issues? I can guide you through our secure payment process.",
		"Our payment system is secure and supports various options. What payment method would you prefer?",
	},
	"account": {
		"Need help with your account? I can guide you through registration, login, or profile updates.",
		"Account assistance is here! Are you looking to create a new account or having trouble accessing your existing one?",
		"I'm here to help with account-related questions. What specific issue are you facing?",
	},
	"complaint": {
		"I'm sorry to hear about the issue. Your satisfaction is our priority. Can you please describe the problem so I can help resolve it?",
		"That's not the experience we want for you. Let me help make this right. What specific issue occurred?",
		"I apologize for any inconvenience. Please share the details, and I'll ensure we address your concern properly.",
	},
	"compliment": {
		"Thank you so much! We're delighted you're happy with our service. Is there anything else I can help you with?",
		"Your kind words make our day! We're committed to providing the best meat and seafood experience.",
		"We appreciate your feedback! It motivates us to continue delivering excellent service.",
	},
	"store_location": {
		"I can help you find our nearest store location! What area are you in?",
		"We have multiple store locations for your convenience. Which city or area should I search?",
		"Looking for a nearby store? Tell me your location and I'll find the closest branch.",
	},
	"nutrition": {
		"Great question! Our products are rich in protein and essential nutrients. Which specific nutritional information do you need?",
		"Nutrition is important! I can provide details about protein content, calories, and health benefits of our products.",
		"Our meat and seafood are excellent sources of protein, vitamins, and minerals. What nutritional info interests you?",
	},
	"recipe": {
		"Love to cook? I can suggest some delicious recipes! What type of meat or seafood would you like recipe ideas for?",
		"Cooking tips coming up! Which product do you want to prepare, and what's your preferred cooking style?",
		"Great idea! Fresh ingredients make the best meals. What would you like to cook today?",
	},
	"goodbye": {
		"Thank you for choosing Fresh Meat & Seafood Platform! Have a wonderful day! 🍖🐟",
		"Goodbye! Come back anytime for premium quality meat and seafood. Take care!",
		"It was great helping you today! See you soon for more fresh deliciousness!",
	},
	FallbackIntent: {
		"I understand you need assistance. Let me connect you with our specialized support team for detailed help.",
		"That's a great question! While I'm learning, our expert team can provide you with comprehensive assistance.",
		"I want to make sure you get the best help possible. Let me connect you with our support specialists.",
	},
}
