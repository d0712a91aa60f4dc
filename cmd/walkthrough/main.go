// Command walkthrough drives one citizen and one officer session through
// the whole flow in process and prints what each screen would show.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"civic-reports/config"
	"civic-reports/internal/i18n"
	"civic-reports/internal/models"
	"civic-reports/internal/services"
	"civic-reports/internal/task"
)

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func must[T any](v T, err error) T {
	check(err)
	return v
}

func wait[T any](t *task.Task[T], err error) T {
	check(err)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return must(t.Wait(ctx))
}

func signIn(s *services.State, role models.Role, name string) models.Identity {
	check(s.Login.SetName(name))
	check(s.Login.SelectRole(role))
	wait(s.Login.SubmitCredential("1234 5678 9012"))
	return wait(s.Login.SubmitCode("123456"))
}

func main() {
	cfg := config.LoadConfig()
	if err := i18n.Validate(); err != nil {
		log.Fatalf("i18n: %v", err)
	}

	backend := services.NewBackend(nil, nil, services.Delays{
		Send:   cfg.SendDelay,
		Verify: cfg.VerifyDelay,
		Submit: cfg.SubmitDelay,
		Save:   cfg.SaveDelay,
	}, i18n.English)
	store := services.NewSessionStore(backend)

	citizen := store.Create()
	id := signIn(citizen, models.RoleCitizen, "Ravi Kumar")
	fmt.Printf("signed in as %s (%s), page=%s\n", id.Username, id.DisplayName, citizen.Page())

	must(citizen.Municipality.Select("ranchi"))
	must(citizen.Municipality.Confirm())
	check(citizen.Navigate(models.PageCompose))
	post := wait(citizen.Compose("Pothole on Main Road", "Large pothole near the market #roads #safety", nil))
	fmt.Printf("created %s %q tags=%v, page=%s\n", post.ID, post.Title, post.Hashtag, citizen.Page())

	officer := store.Create()
	oid := signIn(officer, models.RoleOfficer, "")
	fmt.Printf("officer %s on page=%s\n", oid.Username, officer.Page())

	must(officer.SetStatus(post.ID, models.StatusWorking))
	must(officer.Comment(post.ID, "Crew assigned for Monday"))
	must(officer.SetStatus(post.ID, models.StatusSolved))

	counts := must(citizen.Counts())
	fmt.Printf("my reports: total=%d pending=%d working=%d solved=%d\n",
		counts.Total, counts.Pending, counts.Working, counts.Solved)

	again := must(citizen.Repost(post.ID))
	fmt.Printf("reposted as %s (status %s)\n", again.ID, again.Status)

	check(citizen.SetLocale(i18n.Hindi))
	info := must(citizen.MunicipalityInfo(""))
	fmt.Printf("%s: %s / %s\n", info.Municipality.Name, info.Services[0].Title, citizen.T("nav.home"))

	prof := must(citizen.Profile())
	fmt.Printf("profile: reports=%d comments=%d resolved=%d\n",
		prof.ReportsSubmitted, prof.CommentsReceived, prof.IssuesResolved)

	stats := must(officer.Dashboard())
	fmt.Printf("dashboard: %+v\n", stats)
}
