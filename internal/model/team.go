package model

import "unicode/utf8"

// TeamMember описывает участника основной команды клуба в том виде, в каком он хранится в таблице team_members.
type TeamMember struct {
	ID           ID     `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Position     string `json:"position" yaml:"position"`
	Email        string `json:"email" yaml:"email"`
	LinkedInURL  string `json:"linkedin_url,omitempty" yaml:"linkedin_url"`
	ImageURL     string `json:"image_url,omitempty" yaml:"image_url"`
	DisplayOrder int    `json:"display_order" yaml:"display_order"`
}

// Initial возвращает первый символ имени для аватара-заглушки.
func (m TeamMember) Initial() string {
	r, size := utf8.DecodeRuneInString(m.Name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
