// Package composer turns a classified intent into a rendered reply string,
// populated from the knowledge base. Rendering is a pure function of
// (intent, message, now): no state is kept between calls and identical inputs
// produce byte-identical output.
package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/neer2304/foliobot/internal/intent"
	"github.com/neer2304/foliobot/internal/kb"
)

// projectBindings statically ties each per-project intent to its knowledge
// base record by name. New resolves the bindings at construction, so a rename
// in the knowledge base fails startup instead of surfacing as a broken reply.
var projectBindings = []struct {
	intent intent.Intent
	name   string
}{
	{intent.ResumeBuilder, "Resume Builder SaaS"},
	{intent.Analytics, "Visitor Analytics Dashboard"},
	{intent.Ecommerce, "E-commerce Platform"},
	{intent.CRM, "CRM for Small Business"},
	{intent.Portfolio3D, "3D Interactive Portfolio"},
}

// Composer renders replies from an immutable knowledge base snapshot.
type Composer struct {
	kb        *kb.KnowledgeBase
	firstName string
	byIntent  map[intent.Intent]kb.Project
}

// New builds a Composer over the given knowledge base. It returns an error if
// any per-project intent binding references a project that does not exist.
func New(k *kb.KnowledgeBase) (*Composer, error) {
	byIntent := make(map[intent.Intent]kb.Project, len(projectBindings))
	for _, b := range projectBindings {
		p, ok := k.FindProject(b.name)
		if !ok {
			return nil, fmt.Errorf("intent %s bound to unknown project %q", b.intent, b.name)
		}
		byIntent[b.intent] = p
	}

	firstName := k.Profile.Name
	if fields := strings.Fields(firstName); len(fields) > 0 {
		firstName = fields[0]
	}

	return &Composer{kb: k, firstName: firstName, byIntent: byIntent}, nil
}

// Reply renders the response for an intent. rawMessage is only consulted on
// the Unknown path, where the fallback entity matcher scans it for a literal
// project reference. now drives the greeting salutation and nothing else.
func (c *Composer) Reply(in intent.Intent, rawMessage string, now time.Time) string {
	if p, ok := c.byIntent[in]; ok {
		return c.ProjectCard(p)
	}

	switch in {
	case intent.Greeting:
		return c.greeting(now)
	case intent.Name:
		return c.name()
	case intent.Skills:
		return c.skills()
	case intent.Frontend:
		return c.frontend()
	case intent.Backend:
		return c.backend()
	case intent.Experience:
		return c.experience()
	case intent.Education:
		return c.education()
	case intent.Projects:
		return c.projects()
	case intent.ProjectDetails:
		return c.projectMenu()
	case intent.Contact:
		return c.contact()
	case intent.Location:
		return c.location()
	case intent.Availability:
		return c.availability()
	case intent.Hobbies:
		return c.hobbies()
	case intent.Help:
		return c.help()
	case intent.Pricing:
		return c.pricing()
	case intent.Timeline:
		return c.timeline()
	case intent.Thanks:
		return "You're very welcome! 😊 It's my pleasure to help. Feel free to ask if you have any more questions about " + c.firstName + "'s work. Have a great day!"
	case intent.Goodbye:
		return "Goodbye! 👋 Thanks for chatting with me. If you have more questions later, I'll be here. Take care!"
	default:
		return c.unknown(rawMessage)
	}
}

// DefaultPrompt is the reply for an empty or missing message.
func (c *Composer) DefaultPrompt() string {
	return fmt.Sprintf("Hi! I'm %s's AI assistant. What would you like to know about him? 😊", c.firstName)
}

// Apology is the generic reply substituted when something goes wrong inside
// the pipeline. It is the only error surface end users ever see.
func (c *Composer) Apology() string {
	return fmt.Sprintf("I'm having trouble processing your request right now. Please try again in a moment. Meanwhile, you can check out %s's projects! 🚀", c.firstName)
}

func (c *Composer) greeting(now time.Time) string {
	var salutation string
	switch hour := now.Hour(); {
	case hour < 12:
		salutation = "Good morning"
	case hour < 17:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}
	return fmt.Sprintf("%s! 👋 I'm %s's virtual assistant. I'm here to help you learn more about his work, skills, and experience. What would you like to know?", salutation, c.firstName)
}

func (c *Composer) name() string {
	p := c.kb.Profile
	return fmt.Sprintf("I'm the AI assistant for **%s**, a %s with %.1f+ years of experience. %s. How can I help you today?",
		p.Name, p.Role, p.YearsOfExperience, p.ShortBio)
}

var skillIcons = []string{"🎨", "⚙️", "🗄️", "🚀", "🛠️", "💪"}

func (c *Composer) skills() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s's Tech Stack**\n", c.kb.Profile.Name)
	for i, cat := range c.kb.Skills.Categories() {
		fmt.Fprintf(&sb, "\n%s **%s**\n", skillIcons[i], cat.Name)
		writeBullets(&sb, "  • ", cat.Skills)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (c *Composer) frontend() string {
	var sb strings.Builder
	sb.WriteString("**Frontend Expertise**\n\n")
	fmt.Fprintf(&sb, "%s specializes in:\n", c.firstName)
	writeBullets(&sb, "• ", c.kb.Skills.Frontend)
	sb.WriteString("\nHe creates responsive, performant, and visually appealing user interfaces with modern frameworks and libraries.")
	return sb.String()
}

func (c *Composer) backend() string {
	var sb strings.Builder
	sb.WriteString("**Backend Expertise**\n\n")
	sb.WriteString("Technologies:\n")
	writeBullets(&sb, "• ", c.kb.Skills.Backend)
	sb.WriteString("\nDatabases:\n")
	writeBullets(&sb, "• ", c.kb.Skills.Database)
	sb.WriteString("\nHe builds scalable APIs and server-side applications with clean architecture and best practices.")
	return sb.String()
}

func (c *Composer) experience() string {
	var sb strings.Builder
	sb.WriteString("**Professional Experience**\n")
	for _, e := range c.kb.Experience {
		fmt.Fprintf(&sb, "\n**%s** at %s (%s)\n%s\nAchievements:\n", e.Role, e.Company, e.Period, e.Description)
		writeBullets(&sb, "  • ", e.Achievements)
	}
	fmt.Fprintf(&sb, "\nOverall, he has %.1f+ years of experience in full-stack development.", c.kb.Profile.YearsOfExperience)
	return sb.String()
}

func (c *Composer) education() string {
	return fmt.Sprintf("**Education & Learning**\n\n%s\n\nHe's continuously learning and staying updated with the latest technologies. Currently exploring %s.",
		c.kb.Profile.Education, strings.Join(c.kb.Profile.Interests[:2], " and "))
}

func (c *Composer) projects() string {
	var sb strings.Builder
	sb.WriteString("**Key Projects**\n")
	for _, p := range c.kb.Projects {
		fmt.Fprintf(&sb, "\n**%s**\n%s\n🛠️ %s\n✨ Features: %s\n",
			p.Name, p.Description, strings.Join(p.Technologies, " · "), strings.Join(p.Features, ", "))
	}
	sb.WriteString("\nAsk me about any project for more details!")
	return sb.String()
}

// ProjectCard is the single detail-card formatter shared by every per-project
// intent, the fallback entity matcher, and the MCP project_details tool.
func (c *Composer) ProjectCard(p kb.Project) string {
	return fmt.Sprintf("**%s**\n\n%s\n\n**Technologies:** %s\n**Key Features:** %s\n**Year:** %s\n\n[View Project](%s)",
		p.Name, p.LongDescription, strings.Join(p.Technologies, ", "), strings.Join(p.Features, ", "), p.Year, p.Link)
}

func (c *Composer) projectMenu() string {
	var sb strings.Builder
	sb.WriteString("I can tell you more about any specific project! Which one interests you?\n")
	for _, p := range c.kb.Projects {
		fmt.Fprintf(&sb, "\n• **%s**", p.Name)
	}
	return sb.String()
}

func (c *Composer) contact() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Connect with %s**\n\n", c.kb.Profile.Name)
	for _, ch := range c.kb.Contact {
		fmt.Fprintf(&sb, "%s **%s:** %s\n", ch.Icon, ch.Label, ch.Address)
	}
	sb.WriteString("\nHe's active on all platforms and usually responds within 24 hours!")
	return sb.String()
}

func (c *Composer) location() string {
	p := c.kb.Profile
	return fmt.Sprintf("%s is based in **%s** (%s).\n\nHe speaks %s and is experienced in remote collaboration with global teams.",
		p.Name, p.Location, p.Timezone, strings.Join(p.Languages, ", "))
}

func (c *Composer) availability() string {
	return fmt.Sprintf("**Availability**\n\n%s\n\nHe's particularly interested in:\n• Freelance projects\n• Interesting collaborations\n• Open source contributions\n• Speaking opportunities\n\nFeel free to reach out through any of his contact channels!",
		c.kb.Profile.Availability)
}

func (c *Composer) hobbies() string {
	p := c.kb.Profile
	var sb strings.Builder
	sb.WriteString("**When not coding...**\n\n")
	fmt.Fprintf(&sb, "%s enjoys:\n", c.firstName)
	writeBullets(&sb, "• ", p.Hobbies)
	sb.WriteString("\nHe's also interested in:\n")
	writeBullets(&sb, "• ", p.Interests)
	sb.WriteString("\n🏆 **Achievements:**\n")
	writeBullets(&sb, "• ", p.Achievements)
	return strings.TrimRight(sb.String(), "\n")
}

func (c *Composer) help() string {
	return fmt.Sprintf("**I can help you with:**\n\n"+
		"🔍 **General Questions** - About %[1]s's background and experience\n"+
		"💻 **Technical Skills** - Detailed tech stack and expertise\n"+
		"📱 **Projects** - Information about specific projects\n"+
		"📧 **Contact** - How to reach %[1]s\n"+
		"💰 **Pricing** - Project rates and budget\n"+
		"⏰ **Timeline** - Project duration and deadlines\n"+
		"🤝 **Collaboration** - Freelance and partnership opportunities\n\n"+
		"Just ask me anything!", c.firstName)
}

func (c *Composer) pricing() string {
	return fmt.Sprintf("**Project Pricing**\n\n"+
		"%s offers flexible pricing based on project scope:\n\n"+
		"💼 **Small Projects** - $500 - $2,000\n   (Landing pages, small apps, bug fixes)\n\n"+
		"📊 **Medium Projects** - $2,000 - $8,000\n   (Full-stack applications, dashboards)\n\n"+
		"🏗️ **Large Projects** - $8,000 - $20,000+\n   (SaaS platforms, complex systems)\n\n"+
		"🕒 **Hourly Rate** - $40 - $60/hour\n\n"+
		"Contact him for a detailed quote based on your specific requirements!", c.firstName)
}

func (c *Composer) timeline() string {
	return "**Project Timelines**\n\n" +
		"Typical project durations:\n\n" +
		"⚡ **Quick Projects** - 1-2 weeks\n   (Small websites, simple apps)\n\n" +
		"📈 **Standard Projects** - 3-6 weeks\n   (Full-stack apps, dashboards)\n\n" +
		"🏗️ **Complex Projects** - 2-3 months\n   (SaaS platforms, custom systems)\n\n" +
		"Timelines can be adjusted based on your needs and requirements."
}

func (c *Composer) unknown(rawMessage string) string {
	if p, ok := c.MatchProject(rawMessage); ok {
		return c.ProjectCard(p)
	}

	var names []string
	for _, p := range c.kb.Projects {
		names = append(names, p.Name)
	}

	return fmt.Sprintf("I'm here to help you learn more about **%s**! Here's what I can tell you about:\n\n"+
		"👤 **Personal Info** - Background, location, languages\n"+
		"💻 **Skills** - Frontend, backend, tools, soft skills\n"+
		"📊 **Experience** - Work history, achievements\n"+
		"🚀 **Projects** - %s\n"+
		"📧 **Contact** - Email, LinkedIn, GitHub, Instagram\n"+
		"💰 **Pricing** - Rates and budget information\n"+
		"⏰ **Timeline** - Project duration estimates\n\n"+
		"What would you like to explore? 😊", c.kb.Profile.Name, strings.Join(names, ", "))
}

// MatchProject is the fallback entity matcher: it returns the first project,
// in knowledge-base order, whose lowercased name or the first word of whose
// description appears as a substring of the message. The match is deliberately
// loose; short description words can produce false positives.
func (c *Composer) MatchProject(rawMessage string) (kb.Project, bool) {
	msg := strings.ToLower(rawMessage)
	for _, p := range c.kb.Projects {
		if strings.Contains(msg, strings.ToLower(p.Name)) {
			return p, true
		}
		if words := strings.Fields(strings.ToLower(p.Description)); len(words) > 0 && strings.Contains(msg, words[0]) {
			return p, true
		}
	}
	return kb.Project{}, false
}

func writeBullets(sb *strings.Builder, prefix string, items []string) {
	for _, item := range items {
		sb.WriteString(prefix)
		sb.WriteString(item)
		sb.WriteByte('\n')
	}
}
