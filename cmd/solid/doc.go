// Command solid is a runnable tour of the five SOLID principles.
//
// Each principle has one small membership example implemented twice: first
// violating the principle, then honoring it. The examples are independent
// packages; only the demo catalog ties them together.
//
//	solid list                        # the five demos
//	solid run srp                     # narrate one lesson
//	solid run --all                   # narrate all five, in order
//	solid run --all --record run.txt  # keep the transcript
//	solid explain dip                 # render the write-up
//
// Configuration comes from solid.yaml (or --config), overridden by SOLID_*
// environment variables; a .env file is honored when present. --verbose
// turns on debug logging, --no-color strips the styling.
package main
