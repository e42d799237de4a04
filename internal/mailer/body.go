package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ArticleAnnouncement carries the fields interpolated into a broadcast body.
type ArticleAnnouncement struct {
	Title       string
	Category    string
	Description string
	Link        string
}

// Known article categories with a dedicated blurb in the broadcast body.
const (
	CategoryCodingTips       = "Coding Tips"
	CategoryLatestTechTrends = "Latest Tech Trends"
	CategoryFeaturedProjects = "Featured Coding Projects"
)

var announcementTemplate = template.Must(template.New("announcement").Parse(`
<p>Hello Friend! 👋,</p>
<p>
  In this edition, I'm thrilled to share a brand new article that I believe you'll find both insightful and engaging.
</p>

<div style="background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin: 15px 0;">

  <h2 style="color: #007bff; margin: 0;">{{.Title}}</h2>

  <p style="font-size: 1.2em; color: #333; margin-top: 10px;">
    Welcome to {{.Site}} – your gateway to a world of tech wonders! 🚀 I'm excited to unveil a cutting-edge article nestled in the vibrant realms of
    <span style="color: #dc3545;">{{.Category}}</span>. Get ready for an exhilarating journey that promises both insight and excitement!
  </p>

  <p style="font-size: 1.2em; color: #333; margin-top: 0;">{{.Description}}</p>

  <p style="font-size: 1.2em; color: #333; margin-top: 10px;">{{.Blurb}}</p>

  <p style="font-size: 1.2em; color: #333; margin-top: 10px;">
    Read the full article and join the conversation <strong>by visiting <a href="{{.Link}}" style="color: #007bff; text-decoration: none;">my website</a></strong>.
  </p>

</div>

<p>If you have any thoughts, questions, or feedback, feel free to reply to this email. I always appreciate hearing from you!</p>

<p>Happy reading!</p>
<p>Best regards,</p>
<p>{{.Author}}</p>
`))

// categoryBlurb picks the fixed per-category pitch, with a generic
// fallback for categories outside the known three.
func categoryBlurb(category string) template.HTML {
	switch category {
	case CategoryCodingTips:
		return template.HTML(`
          Elevate your coding skills with expert tips and techniques from seasoned developers. In this category, expect:
          <ul>
            <li>Insider coding strategies to optimize your development workflow.</li>
            <li>Best practices for writing clean and efficient code.</li>
            <li>Problem-solving techniques to tackle common coding challenges.</li>
          </ul>`)
	case CategoryLatestTechTrends:
		return template.HTML(`
          Stay at the forefront of the tech world with insights into the latest trends and innovations. Explore:
          <ul>
            <li>Emerging technologies shaping the future of software development.</li>
            <li>Analysis of industry trends and their impact on the tech landscape.</li>
            <li>Spotlights on cutting-edge tools and frameworks.</li>
          </ul>`)
	case CategoryFeaturedProjects:
		return template.HTML(`
          Embark on a journey of inspiration with standout coding projects showcasing creativity and technical prowess. Dive into:
          <ul>
            <li>Showcases of real-world projects demonstrating unique solutions.</li>
            <li>Behind-the-scenes insights into project development and decision-making.</li>
            <li>Opportunities to learn from diverse coding styles and project architectures.</li>
          </ul>`)
	default:
		return "Discover something valuable in these pages."
	}
}

func renderAnnouncement(article ArticleAnnouncement, author, site string) (string, error) {
	var buf bytes.Buffer
	err := announcementTemplate.Execute(&buf, struct {
		ArticleAnnouncement
		Author string
		Site   string
		Blurb  template.HTML
	}{
		ArticleAnnouncement: article,
		Author:              author,
		Site:                site,
		Blurb:               categoryBlurb(article.Category),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m *Mailer) confirmationBody() string {
	return fmt.Sprintf(`
Hello there! 👋

I'm %[1]s, and I'm thrilled to welcome you to %[2]s – your weekly source for all things tech and inspiration! 🚀

Thank you for subscribing to our newsletter. As a part of our community, you'll receive valuable insights and updates every Tuesday, Thursday, and Friday. Here's what you can look forward to:

📅 Schedule:
- Tuesdays & Thursdays: Explore the latest tech trends shaping the world.
- Fridays: Get a glimpse into my projects, along with coding tips to enhance your skills.

🌟 What's Inside:
- Tech Trends: Stay informed about the latest in technology.
- Project Highlights: Discover the exciting projects I've been working on.
- Coding Tips: Learn practical tips to improve your coding skills.

✉️ Quick Tips:
1. Inbox Priority: Ensure our emails land in your primary inbox.
2. Contacts: Add our email address to your contacts for seamless communication.
3. Stay Secure: Mark us as a safe contact for hassle-free updates.

Thank you for being a part of our community. I look forward to sharing the wonders of technology with you!

Happy Coding,
%[1]s
`, m.author, m.site)
}
