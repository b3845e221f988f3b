// Package di integrates varde settings objects with Uber's Fx dependency
// injection framework.
//
// NewModule builds an Fx module that loads a raw settings mapping from a
// source and supplies the resolved *varde.Object under a named tag, so
// several settings objects can coexist in one container:
//
//	app := fx.New(
//	    di.NewModule("MYAPP", schema,
//	        di.WithYAMLFile("/etc/myapp/settings.yaml"),
//	    ),
//	    fx.Invoke(fx.Annotate(
//	        func(settings *varde.Object) error {
//	            token, err := settings.Get("TOKEN")
//	            ...
//	        },
//	        fx.ParamTags(`name:"MYAPP"`),
//	    )),
//	)
//
// The source is loaded once, when Fx constructs the object; a load failure
// or a misconfiguration surfaced during startup invokes fails the app.
package di
