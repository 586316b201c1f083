// Package yamlconfig provides a YAML implementation of config.Loader. It
// accepts the same project structure as the HCL loader:
//
//	projects:
//	  - id: Root
//	    params:
//	      env.JAVA_HOME: "%system.jdk%"
//	    build_types:
//	      - id: Build
//	        templates: [Gradle]
//	        options:
//	          branchFilter: "+:%branch.spec%"
//	        steps:
//	          - id: build
//	            type: gradle-runner
//	            params:
//	              ui.gradleRunner.gradle.tasks.names: "%gradle.tasks%"
//	        failure_conditions:
//	          - id: message
//	            type: BuildFailureOnMessage
//	        snapshot_dependencies:
//	          - source: Compile
//	            options: { run-build-on-the-same-agent: "%same.agent%" }
//	        artifact_dependencies:
//	          - source: Compile
//	            paths: "%artifacts.dir%/*.jar"
//	        requirements:
//	          - property: teamcity.agent.jvm.os.name
//	            type: equals
//	            value: "%os%"
//
// A file may hold several documents separated by `---`.
package yamlconfig
