package intent

// Entry associates an intent with its trigger keywords and relative weight.
// Keywords are stored lowercase; matching is substring containment against the
// lowercased message, so a keyword can hit mid-word ("tech" matches inside
// "technologies"). That looseness is deliberate and load-bearing: replies are
// tuned around it.
type Entry struct {
	Intent   Intent
	Keywords []string
	Weight   float64
}

// Catalogue is the fixed intent table. Declaration order is significant:
// when two intents score identically, the earlier entry wins. Project-specific
// intents carry weight 1.1 so a single project keyword outranks a partial
// match on the generic "projects" vocabulary.
var Catalogue = []Entry{
	{Greeting, []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "howdy", "greetings"}, 1},
	{Name, []string{"your name", "who are you", "tell me about yourself", "introduce yourself", "about you"}, 1},
	{Skills, []string{"skills", "technologies", "tech stack", "what do you use", "programming languages", "frameworks", "tools", "expertise", "proficient", "tech"}, 1},
	{Frontend, []string{"frontend", "front-end", "ui", "user interface", "design", "css", "styling"}, 0.8},
	{Backend, []string{"backend", "back-end", "server", "api", "database", "db"}, 0.8},
	{Experience, []string{"experience", "years", "background", "work history", "career", "professional", "journey"}, 1},
	{Education, []string{"education", "study", "learn", "qualification", "degree", "college", "university", "school"}, 1},
	{Projects, []string{"projects", "work", "portfolio", "built", "created", "made", "developed", "applications", "apps"}, 1},
	{ProjectDetails, []string{"tell me more about", "details about", "explain", "more information", "deep dive", "specifics", "features of"}, 1.2},
	{ResumeBuilder, []string{"resume", "builder", "cv", "saas resume"}, 1.1},
	{Analytics, []string{"analytics", "dashboard", "visitor", "tracking", "statistics", "charts"}, 1.1},
	{Ecommerce, []string{"ecommerce", "e-commerce", "shop", "store", "payment", "stripe"}, 1.1},
	{CRM, []string{"crm", "customer", "relationship", "management"}, 1.1},
	{Portfolio3D, []string{"3d", "three.js", "portfolio 3d", "solar system", "interactive", "animation"}, 1.1},
	{Contact, []string{"contact", "email", "linkedin", "github", "reach", "message", "get in touch", "instagram", "connect", "social"}, 1},
	{Location, []string{"location", "where", "based", "country", "city", "live", "timezone", "remote"}, 1},
	{Availability, []string{"available", "freelance", "hire", "job", "work together", "collaborate", "opportunity", "open to"}, 1},
	{Hobbies, []string{"hobby", "interest", "passion", "free time", "like to do", "enjoy"}, 1},
	{Help, []string{"help", "can you do", "what can you", "capabilities", "features", "function"}, 1},
	{Thanks, []string{"thank", "thanks", "appreciate", "grateful", "thank you"}, 1},
	{Goodbye, []string{"bye", "goodbye", "see you", "later", "farewell"}, 1},
	{Pricing, []string{"cost", "price", "rate", "charge", "budget", "how much"}, 1},
	{Timeline, []string{"timeline", "duration", "how long", "deadline", "delivery"}, 1},
}
