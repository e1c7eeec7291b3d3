package model

import "strings"

// SocialLink описывает карточку в блоке "Connect With Us".
type SocialLink struct {
	Name  string
	URL   string
	Label string
	Style string
}

// External сообщает, нужно ли открывать ссылку в новой вкладке (всё, кроме mailto).
func (l SocialLink) External() bool {
	return !strings.HasPrefix(l.URL, "mailto:")
}

// Contact содержит контактные данные клуба.
type Contact struct {
	Email    string
	Location string
	Meetings string
}

// Site содержит статический контент страницы.
type Site struct {
	ClubName   string
	Tagline    string
	FooterLine string
	HeroImage  string
	About      []string
	Mission    string
	Vision     string
	Social     []SocialLink
	Contact    Contact
}

// DefaultSite возвращает контент страницы по умолчанию.
func DefaultSite() Site {
	return Site{
		ClubName:   "Tech Innovation Club",
		Tagline:    "Empowering students through technology, innovation, and collaboration",
		FooterLine: "Empowering students through technology",
		HeroImage:  "https://images.pexels.com/photos/1190297/pexels-photo-1190297.jpeg?auto=compress&cs=tinysrgb&w=1920",
		About: []string{
			"The Tech Innovation Club is a vibrant community of passionate students dedicated to exploring " +
				"the frontiers of technology. We bring together creative minds who are eager to learn, build, " +
				"and innovate together.",
			"Through workshops, hackathons, and collaborative projects, we provide a platform for students " +
				"to develop their technical skills, network with industry professionals, and turn their ideas " +
				"into reality.",
		},
		Mission: "To foster innovation and technical excellence by providing students with opportunities " +
			"to learn, collaborate, and create impactful technological solutions.",
		Vision: "To become the leading student technology community, inspiring the next generation of " +
			"innovators and problem-solvers who will shape the future of technology.",
		Social: []SocialLink{
			{Name: "WhatsApp", URL: "https://chat.whatsapp.com/your-group-link", Label: "Join our WhatsApp group", Style: "whatsapp"},
			{Name: "Instagram", URL: "https://instagram.com/your-club", Label: "Follow us on Instagram", Style: "instagram"},
			{Name: "LinkedIn", URL: "https://linkedin.com/company/your-club", Label: "Connect on LinkedIn", Style: "linkedin"},
			{Name: "Email", URL: "mailto:club@example.com", Label: "Send us an email", Style: "email"},
		},
		Contact: Contact{
			Email:    "club@example.com",
			Location: "Student Activity Center, Room 204",
			Meetings: "Every Thursday, 5:00 PM",
		},
	}
}
