package kb

// Default returns the knowledge base snapshot. Called once at startup; the
// returned value must be treated as immutable.
func Default() *KnowledgeBase {
	return &KnowledgeBase{
		Profile: Profile{
			Name:              "Neer Mehta",
			Role:              "Full Stack Developer",
			Title:             "Creative Full Stack Developer & 3D Web Enthusiast",
			ShortBio:          "Passionate about building immersive web experiences with clean code and modern design",
			Location:          "India",
			Timezone:          "IST (UTC+5:30)",
			Languages:         []string{"English", "Hindi", "Gujarati"},
			Availability:      "Open to freelance opportunities and interesting collaborations",
			YearsOfExperience: 1.5,
			Education:         "Self-taught developer with focus on modern web technologies",
			Hobbies:           []string{"Coding", "3D Design", "Problem Solving", "Open Source", "Tech Blogging"},
			Interests:         []string{"Web3", "AI/ML", "Creative Coding", "UX Design"},
			Achievements: []string{
				"Built 10+ production-ready applications",
				"Specialized in 3D web experiences",
				"Active open source contributor",
			},
		},

		Skills: SkillSet{
			Frontend:   []string{"Next.js", "React", "TypeScript", "Tailwind CSS", "Material-UI", "Three.js", "Framer Motion", "Redux", "Zustand"},
			Backend:    []string{"Node.js", "Express", "Python", "FastAPI", "GraphQL", "REST APIs"},
			Database:   []string{"MongoDB", "PostgreSQL", "Redis", "Firebase", "Prisma"},
			DevOps:     []string{"Docker", "AWS", "Vercel", "Netlify", "CI/CD", "GitHub Actions"},
			Tools:      []string{"Stripe", "Chart.js", "Socket.io", "Jest", "Webpack", "Figma"},
			SoftSkills: []string{"Problem Solving", "Team Collaboration", "Project Management", "Client Communication", "Agile Methodology"},
		},

		Projects: []Project{
			{
				Name:            "Resume Builder SaaS",
				Description:     "AI-powered resume builder with multiple templates",
				LongDescription: "A full-featured SaaS platform that helps users create professional resumes using AI. Features include multiple templates, real-time preview, PDF export, and AI-powered content suggestions. Built with Next.js, MongoDB, and OpenAI API.",
				Technologies:    []string{"Next.js", "MongoDB", "OpenAI", "Tailwind CSS", "Stripe"},
				Features:        []string{"AI content generation", "Multiple templates", "PDF export", "User authentication", "Payment integration"},
				Year:            "2024",
				Link:            "/projects/resume-builder",
			},
			{
				Name:            "Visitor Analytics Dashboard",
				Description:     "Real-time visitor tracking with charts and insights",
				LongDescription: "A comprehensive analytics dashboard that tracks visitor behavior in real-time. Features interactive charts, geographic distribution maps, device analytics, and custom reporting. Built with Chart.js, Material-UI, and WebSocket for real-time updates.",
				Technologies:    []string{"React", "Chart.js", "Material-UI", "WebSocket", "Express"},
				Features:        []string{"Real-time tracking", "Geographic mapping", "Device analytics", "Custom reports", "Data export"},
				Year:            "2024",
				Link:            "/projects/analytics",
			},
			{
				Name:            "E-commerce Platform",
				Description:     "Full-featured online store with payment integration",
				LongDescription: "A modern e-commerce platform with product management, shopping cart, order tracking, and secure payment processing. Includes admin dashboard, inventory management, and customer analytics.",
				Technologies:    []string{"Next.js", "Stripe", "MongoDB", "Redis", "Tailwind CSS"},
				Features:        []string{"Product management", "Shopping cart", "Payment processing", "Order tracking", "Admin dashboard"},
				Year:            "2023",
				Link:            "/projects/ecommerce",
			},
			{
				Name:            "CRM for Small Business",
				Description:     "Customer relationship management system",
				LongDescription: "A lightweight CRM designed for small businesses to manage customer relationships, track interactions, and automate follow-ups. Features include contact management, task tracking, email integration, and sales pipeline visualization.",
				Technologies:    []string{"React", "Node.js", "PostgreSQL", "Express", "Material-UI"},
				Features:        []string{"Contact management", "Task tracking", "Email integration", "Sales pipeline", "Analytics"},
				Year:            "2023",
				Link:            "/projects/crm",
			},
			{
				Name:            "3D Interactive Portfolio",
				Description:     "Solar system themed portfolio with Three.js",
				LongDescription: "An immersive 3D portfolio featuring a solar system theme where planets represent different skills and technologies. Includes interactive orbits, particle effects, and smooth camera controls. Built with Three.js and React Three Fiber.",
				Technologies:    []string{"Three.js", "React Three Fiber", "WebGL", "Framer Motion", "TypeScript"},
				Features:        []string{"3D solar system", "Interactive planets", "Particle effects", "Smooth animations", "Responsive design"},
				Year:            "2024",
				Link:            "/projects/3d-portfolio",
			},
			// AccuManage has no dedicated intent on purpose: it is only
			// reachable through the fallback entity matcher.
			{
				Name:            "AccuManage",
				Description:     "Inventory and billing manager for small retail stores",
				LongDescription: "A desktop-friendly web app that keeps stock levels, purchase records, and GST-ready invoices in one place for small retail shops. Includes barcode-based item lookup, low-stock alerts, and monthly sales summaries.",
				Technologies:    []string{"React", "Node.js", "MongoDB", "Express", "Chart.js"},
				Features:        []string{"Stock tracking", "Invoice generation", "Barcode lookup", "Low-stock alerts", "Sales reports"},
				Year:            "2022",
				Link:            "/projects/accumanage",
			},
		},

		Experience: []ExperienceEntry{
			{
				Role:        "Full Stack Developer",
				Company:     "Freelance",
				Period:      "2023 - Present",
				Description: "Building custom web applications for clients worldwide. Specializing in SaaS platforms, analytics dashboards, and interactive 3D experiences.",
				Achievements: []string{
					"Delivered 10+ successful projects",
					"Maintained 100% client satisfaction",
					"Reduced load times by 40% through optimization",
				},
			},
			{
				Role:        "Frontend Developer",
				Company:     "Tech Startup",
				Period:      "2022 - 2023",
				Description: "Developed responsive web applications and component libraries. Collaborated with design team to implement pixel-perfect UIs.",
				Achievements: []string{
					"Built reusable component library",
					"Improved site performance by 50%",
					"Mentored junior developers",
				},
			},
		},

		Contact: []ContactChannel{
			{Icon: "📧", Label: "Email", Address: "mehtaneer143@gmail.com"},
			{Icon: "💼", Label: "LinkedIn", Address: "https://www.linkedin.com/in/neer-mehta-94a23b339"},
			{Icon: "💻", Label: "GitHub", Address: "https://github.com/Neer2304"},
			{Icon: "📸", Label: "Instagram", Address: "https://www.instagram.com/neer_mehta23"},
			{Icon: "🐦", Label: "Twitter", Address: "https://twitter.com/neer_mehta"},
			{Icon: "🌐", Label: "Portfolio", Address: "https://neer-portfolio.vercel.app"},
		},
	}
}
