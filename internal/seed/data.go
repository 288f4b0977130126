package seed

import "nainaland/internal/model"

func sampleProperties() []model.CreatePropertyRequest {
	return []model.CreatePropertyRequest{
		{
			Title: "48 Guntha Land in Nadhal, Khalapur ₹6.5 Lakh/Guntha",
			Description: "Presenting a 48 Guntha land parcel for sale in Nadhal, Khalapur at ₹6.5 lakh per guntha, " +
				"within the MSRDC Smart City Development Plan. The parcel sits 10 km from the Mumbai-Pune Expressway " +
				"and 23 km from the upcoming Navi Mumbai International Airport, close to the JNPT Chowk Road expansion " +
				"and the Virar-Alibaug Multimodal Corridor. Nearby: Godrej Township, Hiranandani Fortune City, L&T Depot " +
				"and SCMS Institute. Clear title, single ownership, FSI 0.15 in the eco-sensitive Matheran buffer zone. " +
				"Suited to low-density residential plotting, a weekend bungalow, a boutique resort or long-term investment.",
			Price:    31200000,
			Location: "Nadhal, Khalapur, Maharashtra",
			Size:     48,
			SizeUnit: ptr("Guntha"),
			Features: []string{
				"MSRDC Smart City Zone",
				"FSI 0.15 (Eco-sensitive zone)",
				"Clear Title",
				"Single Owner",
				"10 km from Mumbai-Pune Expressway",
				"23 km from Navi Mumbai Airport",
				"Surrounded by major infrastructure projects",
			},
			Images:       []string{"https://img.youtube.com/vi/8AB-0F_hTmQ/maxresdefault.jpg"},
			VideoURL:     ptr("https://www.youtube.com/watch?v=8AB-0F_hTmQ&t=17s"),
			IsFeatured:   ptr(true),
			PropertyType: "Land",
		},
	}
}

func sampleBlogPosts() []model.CreateBlogPostRequest {
	return []model.CreateBlogPostRequest{
		{
			Title: "The Best Time to Buy a Plot in Karjat? Right Now – Here's Why!",
			Content: `Karjat, in the green belt of the Western Ghats, has become a favourite of real estate investors and nature lovers alike.

Property Prices Are Still Affordable
Compared to Lonavala and Alibaug, plot rates in Karjat remain low. As of early 2025 they start from ₹250 per sq. ft. and average around ₹4,556 per sq. ft.

Soaring Demand for Second Homes and Rentals
Remote work and weekend getaways have pushed demand for second homes, vacation rentals and homestays.

Improved Connectivity and Infrastructure Expansion
The Karjat-Panvel railway corridor, Mumbai-Pune Expressway access and the proposed Karjat-Badlapur highway keep shortening travel times.

High Return on Investment
Plots bought today are expected to appreciate significantly on the back of demand and planned infrastructure across the MMR.

Eco-Friendly and Sustainable Living Options
Buyers are building eco-homes with rainwater harvesting, solar panels and organic farming.

Conclusion:
Affordability, growth and connectivity make 2025 the best time to buy a plot in Karjat.`,
			Excerpt: "Learn why 2025 is the perfect time to invest in Karjat's booming real estate market.",
			Author:  "Arif Lalani",
			Image:   "https://images.unsplash.com/photo-1526948531399-320e7e40f0ca?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&h=800&q=80",
		},
		{
			Title: "Don't Wait to Invest in Panvel: Prices Are Rising, and Here's the Proof",
			Content: `The Rise of Panvel Real Estate

Panvel, once a quiet outskirt of Navi Mumbai, is now at the forefront of real estate growth thanks to the Navi Mumbai International Airport and expanded infrastructure.

1. The Data Doesn't Lie
- Residential property rates have increased by 30% to 45% in select nodes
- Land rates near infrastructure projects have surged by up to 60%
- CIDCO-approved plots have appreciated on clear titles and government backing

2. Navi Mumbai International Airport: A Game-Changer
Prices around the airport's influence zone are already responding and are expected to double after commissioning.

3. CIDCO Projects and NAINA: Structured Growth
Planned nodes and clear titles mean lower legal risk and higher resale value.

4. Connectivity That Commands a Premium
- Mumbai-Pune Expressway
- Sion-Panvel Expressway
- Panvel Railway Station (Mumbai-Goa Route)
- Mumbai Trans-Harbour Link (MTHL)

5. Affordability Today, Appreciation Tomorrow
A 2BHK costing ₹45–60 lakhs today could be valued at ₹80–90 lakhs in 3–5 years.

Final Thoughts
Every booming location was once an underdog. Delaying could mean entering at a much higher price point.`,
			Excerpt: "Explore why Panvel is quickly becoming a top investment hotspot, and how current price trends signal a great time to buy.",
			Author:  "Arif Lalani",
			Image:   "https://images.unsplash.com/photo-1582407947304-fd86f028f716?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&h=800&q=80",
		},
	}
}

func sampleTestimonials() []model.CreateTestimonialRequest {
	return []model.CreateTestimonialRequest{
		{
			Name:     "Rajesh Kumar",
			Location: "Mumbai",
			Message:  "Nainaland Deals helped me find the perfect plot for my dream home. Their expertise in the local market and transparent approach made the entire process smooth and hassle-free.",
			Rating:   5,
			Image:    ptr("https://randomuser.me/api/portraits/men/1.jpg"),
		},
		{
			Name:     "Priya Sharma",
			Location: "Pune",
			Message:  "I was looking to invest in land property, and Nainaland Deals provided excellent guidance. They understood my requirements perfectly and found me a great investment opportunity.",
			Rating:   5,
			Image:    ptr("https://randomuser.me/api/portraits/women/1.jpg"),
		},
		{
			Name:     "Amit Patel",
			Location: "Navi Mumbai",
			Message:  "The team at Nainaland Deals is highly professional and knowledgeable. They helped me navigate through various options and made sure I got the best deal for my investment.",
			Rating:   4,
			Image:    ptr("https://randomuser.me/api/portraits/men/2.jpg"),
		},
	}
}
