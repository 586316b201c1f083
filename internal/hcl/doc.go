// Package hcl provides the HCL implementation of config.Loader. It parses
// project definition files and translates their blocks into the
// format-agnostic declarations of the config package.
//
// A project file looks like:
//
//	project "Root" {
//	  name   = "Root project"
//	  params = { "env.JAVA_HOME" = "%system.jdk%" }
//
//	  template "Gradle" {
//	    step "build" {
//	      type   = "gradle-runner"
//	      params = { "ui.gradleRunner.gradle.tasks.names" = "%gradle.tasks%" }
//	    }
//	  }
//
//	  build_type "Build" {
//	    templates = ["Gradle"]
//	    options   = { branchFilter = "+:%branch.spec%", cleanBuild = true }
//	    failure_condition "message" {
//	      type   = "BuildFailureOnMessage"
//	      params = { stopBuildOnFailure = "%fail.fast%" }
//	    }
//	    snapshot_dependency "Compile" { options = { "run-build-on-the-same-agent" = "%same.agent%" } }
//	    artifact_dependency "Compile" { paths = "%artifacts.dir%/*.jar" }
//	    requirement "teamcity.agent.jvm.os.name" {
//	      type  = "equals"
//	      value = "%os%"
//	    }
//	  }
//
//	  project "Child" { }
//	}
//
// Parameter and option maps keep their declared order. Keys containing dots
// must be quoted.
package hcl
