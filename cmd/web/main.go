// @title           Rishta API
// @version         1.0
// @description     Backend API for the Rishta matchmaking platform.
// @contact.name    Rishta Support
// @contact.email   support@rishta.app
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "rishta_backend/internal/app"

func main() {
	app.Run()
}
