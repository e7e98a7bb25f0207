// Package advisor generates the mentor chat replies. Responses are
// keyword-driven; the first matching topic wins.
package advisor

import "strings"

const (
	resumeReply    = "Great question about resumes! Here are some key tips: 1) Tailor your resume to each position, 2) Use action verbs and quantify achievements, 3) Keep it concise and relevant. Would you like me to elaborate on any of these points?"
	interviewReply = "Interview preparation is crucial! I recommend: 1) Research the company thoroughly, 2) Practice common technical and behavioral questions, 3) Prepare thoughtful questions to ask them. Remember, interviews are conversations - show your personality and enthusiasm!"
	skillReply     = "Continuous learning is key to career growth! Focus on: 1) Skills relevant to your target roles, 2) Building projects to demonstrate your abilities, 3) Getting feedback from peers and mentors. What specific skills are you looking to develop?"
	careerReply    = "Career planning is a journey! Consider: 1) Your interests and strengths, 2) Industry trends and opportunities, 3) Short-term and long-term goals. It's okay to pivot as you learn more about yourself and the field. What career areas interest you most?"
	defaultReply   = "That's a thoughtful question! Career development is unique for everyone. I'd recommend focusing on building both technical skills and soft skills, networking with professionals in your field, and gaining practical experience through internships or projects. What specific aspect of your career would you like to explore further?"
)

func Reply(userMessage string) string {
	msg := strings.ToLower(userMessage)

	switch {
	case strings.Contains(msg, "resume") || strings.Contains(msg, "cv"):
		return resumeReply
	case strings.Contains(msg, "interview"):
		return interviewReply
	case strings.Contains(msg, "skill") || strings.Contains(msg, "learn"):
		return skillReply
	case strings.Contains(msg, "career") || strings.Contains(msg, "path"):
		return careerReply
	default:
		return defaultReply
	}
}
