package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"disasterwatch/internal/core/query"
	"disasterwatch/internal/core/services"
	"disasterwatch/internal/core/session"
)

func printSession(ses session.Session) {
	if !ses.Authenticated {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("Logged in as %s (role: %s)\n", ses.Subject, ses.Role)
}

func printSosResult(res query.SosResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tZONE\tTYPE\tSTATUS\tMESSAGE")
	for _, r := range res.Page {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.ZoneName, r.ZoneType, r.Status, r.Message)
	}
	w.Flush()

	fmt.Printf("\nPage %d of %d (%d requests)\n", res.Meta.Page, res.Meta.TotalPages, res.Aggregates.Total)

	fmt.Println("\nBy status:")
	for _, s := range res.Aggregates.ByStatus {
		fmt.Printf("  %-12s %3d (%d%%)\n", s.Status, s.Count, s.Pct)
	}

	if len(res.Aggregates.TopZones) > 0 {
		fmt.Println("\nTop zones:")
		for _, z := range res.Aggregates.TopZones {
			fmt.Printf("  %-28s %3d requests (risk: %s)\n", z.Zone, z.Count, z.Risk)
		}
	}
}

func printZoneResult(res query.ZoneResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tDANGER\tCENTER\tRADIUS")
	for _, z := range res.Page {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.4f,%.4f\t%.1f km\n",
			z.ID, z.Name, z.DisasterType, z.DangerLevel, z.CenterLatitude, z.CenterLongitude, z.RadiusKm)
	}
	w.Flush()

	fmt.Printf("\nPage %d of %d (%d zones, %d critical)\n",
		res.Meta.Page, res.Meta.TotalPages, res.Stats.Total, res.Stats.Critical)
}

func printOverview(data services.DashboardData) {
	fmt.Printf("Total zones:     %d\n", data.TotalZones)
	fmt.Printf("Critical zones:  %d\n", data.CriticalZones)
	fmt.Printf("SOS requests:    %d (%d pending, %d active)\n", data.TotalSos, data.PendingSos, data.ActiveSos)

	if len(data.RecentSos) > 0 {
		fmt.Println("\nRecent SOS requests:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tZONE\tSTATUS\tMESSAGE")
		for _, r := range data.RecentSos {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.ZoneName, r.Status, r.Message)
		}
		w.Flush()
	}
}
