package main

import "github.com/adaptlearn/access-api/cmd"

// @title           Accessibility Content API
// @version         1.0.0
// @description     Transforms uploaded text, audio, and video into accessible renditions for hearing, visual, and cognitive needs
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/adaptlearn/access-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
